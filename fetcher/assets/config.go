package assets

// Consts used across the package.
const (
	ddragon       = "https://ddragon.leagueoflegends.com"
	versionKey    = "ddragon:versions"
	keptVersions  = 3
	championImage = "%s/cdn/%s/img/champion/%s.png"
)
