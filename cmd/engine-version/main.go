package main

import (
	"context"
	"fmt"
	"log"

	"dqx0.com/go/enginesock/sockhttp"
)

func main() {
	c := &sockhttp.Client{}
	v, err := c.PerformJSONRequest(context.Background(), "GET", "/version", nil, "")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(v)
}
