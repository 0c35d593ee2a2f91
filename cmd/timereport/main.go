package main

import "github.com/dbsmedya/timereport/cmd/timereport/cmd"

func main() {
	cmd.Execute()
}
