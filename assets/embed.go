package assets

import "embed"

// PublicFS holds the static signup/login/dashboard pages and their scripts.
//
//go:embed public
var PublicFS embed.FS
