// Command changefont replaces every installed font with one chosen font by
// writing .reg files: a backup of the current font registry keys and a file
// that applies the swap. It never writes the registry itself.
package main

func main() {
	execute()
}
