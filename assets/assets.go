package assets

import "embed"

// FS embeds all static app assets (email templates).
//go:embed templates
var FS embed.FS
