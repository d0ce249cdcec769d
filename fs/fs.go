package appfs

import "embed"

// FS embeds the database migrations so deployed binaries are self-contained.
//go:embed migrations
var FS embed.FS
