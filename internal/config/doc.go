// Package config manages operator preferences stored at
// ~/.vmodgen/config.yaml, such as the default author written into new
// vmod.conf files by the init command. Preferences never influence the
// generate pipeline; absent vmod.conf fields are handled by template
// fallbacks at render time instead.
package config
