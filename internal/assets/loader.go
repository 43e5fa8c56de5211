package assets

// DefaultStyle is the style used when no style is configured. It mirrors
// GitHub's rendered-Markdown look and includes the syntax highlighting
// token classes.
const DefaultStyle = "github"

// AssetLoader defines the contract for loading CSS styles.
// Implementations may load from embedded assets, filesystem, S3, database, etc.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)
}
