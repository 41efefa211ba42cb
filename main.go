package main

import (
	"context"
	"time"

	"github.com/shandysiswandi/intaker/internal/app"
)

func main() {
	application := app.New()    // Load config, wire the enabled modules
	wait := application.Start() // Serve HTTP until a termination signal arrives
	<-wait

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	application.Stop(ctx) // Drain in-flight uploads, then release resources
}
