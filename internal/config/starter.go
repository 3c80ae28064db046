package config

import (
	"fmt"
	"os"
)

const starterConfig = `# sitegen configuration
site:
  title: "My Site"
  url: "https://example.com"

source: ./content

output:
  directory: ./site
  clean: true

collections:
  posts:
    output: true
    permalink: date
  pages:
    output: true
    permalink: pretty

defaults:
  - scope:
      type: posts
    values:
      layout: post

build:
  strict_front_matter: false
  excerpt_separator: "\n\n"

locales:
  available: [en]
`

// WriteStarter writes a commented starter configuration to path.
// Refuses to overwrite an existing file unless force is set.
func WriteStarter(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", path)
		}
	}
	return os.WriteFile(path, []byte(starterConfig), 0o644)
}
