package main

import "yolimar/internal/app/storefront"

func main() {
	storefront.Run()
}
