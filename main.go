// Package main is the hadj-admin command line: a client for the hadj CMS
// REST API and a local twin of that API for development.
package main

import "github.com/Marat1506/hadj-admin/internal"

func main() {
	internal.Run()
}
