package report

import (
	"strconv"
	"strings"
)

// FolderScript renders a shell script that creates the missing folders
// under base. Folder names are single-quoted so the slugs survive any
// shell metacharacters a future naming change might introduce.
func FolderScript(base string, folders []string) string {
	var b strings.Builder
	b.WriteString("#!/bin/sh\n")
	b.WriteString("# Creates the " + strconv.Itoa(len(folders)) + " missing folders under " + base + "\n")
	b.WriteString("set -eu\n\n")
	b.WriteString("cd " + shellQuote(base) + "\n\n")
	for _, folder := range folders {
		b.WriteString("mkdir -p " + shellQuote(folder) + "\n")
	}
	return b.String()
}

func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}
