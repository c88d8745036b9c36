package main

import "yolimar/internal/app/archiver"

func main() {
	archiver.Run()
}
