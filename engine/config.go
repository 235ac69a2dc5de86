// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package engine

type Config struct {
	// ActivityCacheSize is the number of recent operations kept in memory
	// for the activity endpoint.
	ActivityCacheSize int `serialize:"true" json:"activityCacheSize"`
}

func (c *Config) SetDefaults() {
	c.ActivityCacheSize = 128
}
