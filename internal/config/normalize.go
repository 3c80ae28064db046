package config

import (
	"runtime"
	"time"

	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
)

// Built-in permalink style names, expanded by the permalink package.
const (
	PermalinkDate    = "date"
	PermalinkPretty  = "pretty"
	PermalinkOrdinal = "ordinal"
	PermalinkNone    = "none"
)

// Normalize fills defaults into a freshly unmarshalled config.
func (c *Config) Normalize() error {
	if c.Site.Title == "" {
		c.Site.Title = "Site"
	}
	if c.Source == "" {
		c.Source = "./content"
	}
	if c.Output.Directory == "" {
		c.Output.Directory = "./site"
	}
	if c.Build.Workers <= 0 {
		c.Build.Workers = runtime.NumCPU()
	}
	if c.Preview.Port == 0 {
		c.Preview.Port = 1313
	}

	if c.Collections == nil {
		c.Collections = map[string]CollectionConfig{}
	}
	if _, ok := c.Collections["posts"]; !ok {
		c.Collections["posts"] = CollectionConfig{Output: true, Permalink: PermalinkDate}
	}
	if _, ok := c.Collections["pages"]; !ok {
		c.Collections["pages"] = CollectionConfig{Output: true, Permalink: PermalinkPretty}
	}
	for name, cc := range c.Collections {
		if cc.Permalink == "" {
			cc.Permalink = PermalinkPretty
		}
		if cc.SortBy == "" {
			cc.SortBy = "date"
		}
		c.Collections[name] = cc
	}

	loc := time.Local
	if c.Site.Timezone != "" {
		l, err := time.LoadLocation(c.Site.Timezone)
		if err != nil {
			return sgerrors.ValidationFailed("site.timezone", err.Error())
		}
		loc = l
	}
	if c.Site.Time.IsZero() {
		c.Site.Time = time.Now().In(loc)
	}
	return nil
}

// Validate checks the normalized config for contradictions.
func (c *Config) Validate() error {
	for name, cc := range c.Collections {
		switch cc.SortBy {
		case "date", "path":
		default:
			return sgerrors.ValidationFailed("collections."+name+".sort_by", "must be date or path")
		}
	}
	if _, err := c.RebuildIntervalDuration(); err != nil {
		return sgerrors.ValidationFailed("preview.rebuild_interval", err.Error())
	}
	if c.Hooks.NATS.Enabled {
		if c.Hooks.NATS.URL == "" {
			return sgerrors.ValidationFailed("hooks.nats.url", "required when hooks.nats.enabled")
		}
		if c.Hooks.NATS.Subject == "" {
			return sgerrors.ValidationFailed("hooks.nats.subject", "required when hooks.nats.enabled")
		}
	}
	return nil
}
