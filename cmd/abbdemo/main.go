// Command abbdemo drives fixed allocate/free/reallocate workloads through
// pre-built composite allocator policies from the abb package, as a
// smoke-test of a composed policy end to end.
package main

func main() {
	execute()
}
