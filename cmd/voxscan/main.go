// Command voxscan builds voxel scenes into octrees and inspects their
// surfaces.
//
//	voxscan stats scene.yaml --metrics
//	voxscan slice scene.yaml --axis y --level 3
//	voxscan trace scene.yaml --from 0,4.5,4 --to 15,4.5,4
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "voxscan:", err)
		stop()
		os.Exit(1)
	}
}
