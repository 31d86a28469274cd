package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags_OverridesDefaults(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"app", "-a", ":7070", "-d", "flags.sqlite", "-o", "http://b.example"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, ":7070", c.EndpointAddrHTTP)
	assert.Equal(t, "flags.sqlite", c.DatabaseDSN)
	assert.Equal(t, "http://b.example", c.CORSOrigins)
}

func TestParseFlags_IgnoresUnknownFlags(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"app", "-z", "whatever", "-a", ":7071"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, ":7071", c.EndpointAddrHTTP)
	assert.Equal(t, "database.sqlite", c.DatabaseDSN)
}
