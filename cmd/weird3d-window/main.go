package main

import (
	"flag"
	"log"

	"weird3d/internal/scene"
	"weird3d/internal/window"
)

func main() {
	name := flag.String("scene", "terrain", "built-in scene: terrain, orrery or empty")
	fov := flag.Float64("fov", 60, "vertical field of view in degrees")
	flag.Parse()

	var sc scene.Scene
	switch {
	case flag.Arg(0) != "":
		d, err := scene.Load(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		sc = scene.NewMesh(flag.Arg(0), d)
	case *name == "terrain":
		sc = scene.DefaultTerrain()
	case *name == "orrery":
		sc = scene.DefaultOrrery()
	case *name == "empty":
		sc = scene.NewMesh("empty", scene.Data{})
	default:
		log.Fatalf("unknown scene %q", *name)
	}
	if *fov <= 0 || *fov >= 180 {
		log.Fatalf("fov %v out of range (0, 180)", *fov)
	}

	if err := window.Run(window.New(sc, *fov), "weird3d - "+sc.Name()); err != nil {
		log.Fatal(err)
	}
}
