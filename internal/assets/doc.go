// Package assets provides the CSS stylesheets bundled with md2html.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (default styles)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in styles (the GitHub-flavored default)
// embedded at compile time, so converted documents are self-contained with
// no network fetch.
//
// FilesystemLoader allows users to provide custom styles from a directory,
// with path traversal protection and symlink resolution.
//
// AssetResolver is the primary loader used by the CLI. It tries the custom
// FilesystemLoader first, falling back to EmbeddedLoader if the style is
// not found. This enables overriding specific styles while keeping defaults.
//
// # Directory Structure
//
//	{basePath}/
//	└── styles/
//	    └── {name}.css
//
// # Security
//
// Style names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
