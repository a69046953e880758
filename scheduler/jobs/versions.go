package jobs

import (
	"context"
	"log"
	"time"
)

// Anything able to reload the ddragon version list.
type VersionRefresher interface {
	Refresh(ctx context.Context) (string, error)
}

// RefreshVersions reloads the version list used on the champion icons.
// On failure the last known version keeps being served.
func RefreshVersions(versions VersionRefresher) error {
	log.Println("Starting ddragon version refresh")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	latest, err := versions.Refresh(ctx)
	if err != nil {
		log.Printf("Error refreshing the ddragon versions: %v", err)
		return err
	}

	log.Printf("Ddragon version refresh completed, latest is %s", latest)
	return nil
}
