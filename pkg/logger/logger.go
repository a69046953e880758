package logger

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"
	appConfig "winalyze/pkg/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Logger is what the services need to report what happened during a request.
type Logger interface {
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// File logger that we will use to save our logs.
type FileLogger struct {
	mu       sync.Mutex
	logFile  *os.File
	filePath string
}

// Create the log instance with a temporary file.
func CreateLogger() (*FileLogger, error) {
	f, err := os.CreateTemp("", "winalyze-*.log")
	if err != nil {
		return nil, err
	}

	return &FileLogger{
		logFile:  f,
		filePath: f.Name(),
	}, nil
}

// Path of the underlying file.
func (l *FileLogger) Path() string {
	return l.filePath
}

// Log a simple info.
func (l *FileLogger) Infof(format string, args ...any) {
	l.write("[INFO]", format, args...)
}

// Log a error.
func (l *FileLogger) Errorf(format string, args ...any) {
	l.write("[ERROR]", format, args...)
}

// Write a empty line.
func (l *FileLogger) EmptyLine() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logFile.WriteString("\n")
}

// Write something to the logger.
func (l *FileLogger) write(infoType string, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	line := fmt.Sprintf("%-8s %s %s\n", infoType, timestamp, fmt.Sprintf(format, args...))

	l.logFile.WriteString(line)
}

// Clean the file contents.
func (l *FileLogger) CleanFile() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logFile.Truncate(0)

	l.logFile.Seek(0, 0)
}

// Close the file and remove it from the temp dir.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.logFile.Close(); err != nil {
		return err
	}
	return os.Remove(l.filePath)
}

// ObjectKey builds the bucket key for a log file of the given service.
func ObjectKey(service string, at time.Time) string {
	return fmt.Sprintf("winalyze/%s/%s.log", service, at.UTC().Format("2006-01-02T15-04-05"))
}

// Upload the log to a s3 bucket.
func (l *FileLogger) UploadToS3Bucket(ctx context.Context, objectKey string) error {
	l.mu.Lock()
	if _, err := l.logFile.Seek(0, 0); err != nil {
		l.mu.Unlock()
		return fmt.Errorf("failed to rewind file: %w", err)
	}

	// Get the config.
	cfg := aws.Config{
		Region: appConfig.Bucket.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				appConfig.Bucket.AccessKey,
				appConfig.Bucket.AccessSecret,
				"",
			),
		),
	}

	// Create the client.
	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if appConfig.Bucket.Endpoint != "" {
			o.BaseEndpoint = aws.String(appConfig.Bucket.Endpoint)
		}
	})

	// Run the put.
	_, err := s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(appConfig.Bucket.LogBucket),
		Key:    aws.String(objectKey),
		Body:   l.logFile,
		ACL:    types.ObjectCannedACLPrivate,
	})
	l.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to upload %s to S3 bucket: %w", objectKey, err)
	}

	// Clean the file after sending.
	l.CleanFile()

	return nil
}
