package main

import (
	"log"

	"github.com/gotk3/gotk3/gtk"
)

func main() {
	gtk.Init(nil)
	if _, err := newWindow(); err != nil {
		log.Fatal(err)
	}
	gtk.Main()
}
