// Package config resolves the site layout (content directories, index files and
// link prefixes) from defaults, the site-local .newitem.yaml and NEWITEM_*
// environment variables. It also reads and writes individual keys of that file.
package config
