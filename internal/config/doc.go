// Package config reads and writes the giteabak INI configuration file.
//
// The file has three sections:
//
//	[gitea]
//	url = https://git.example.com
//
//	[repos]
//	exceptions = ["org/skip-me"]
//
//	[auth]
//	user  = me
//	token = 0123abcd
//
// [Load] falls back to [application.DefaultConfigFile] when the requested file
// is missing and writes a default configuration when neither exists.
package config
