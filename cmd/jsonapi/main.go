// Command jsonapi is the command line tool for the jsonapi documents.
// It formats and validates the documents and resolves the Accept headers.
package main

func main() {
	Execute()
}
