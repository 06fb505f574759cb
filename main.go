//go:build !(js && wasm)

package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/voxelsplace/cubicmesh/api"
	"github.com/voxelsplace/cubicmesh/batch"
	"github.com/voxelsplace/cubicmesh/cubic"
	"github.com/voxelsplace/cubicmesh/genvolume"
	"github.com/voxelsplace/cubicmesh/material"
	"github.com/voxelsplace/cubicmesh/region"
	"github.com/voxelsplace/cubicmesh/vecmath"
	"github.com/voxelsplace/cubicmesh/volume"
)

func usage() {
	fmt.Println("Usage: cubicmesh <command> [args]")
	fmt.Println("Commands:")
	fmt.Println("  extract input.cmpack output.glb [merge|nomerge]   (extract the whole packed volume to GLB)")
	fmt.Println("  pack voxels.txt output.cmpack [bpp]                (pack a \"x y z idx\" voxel list)")
	fmt.Println("  unpack input.cmpack output.txt                     (unpack to a \"x y z idx\" voxel list)")
	fmt.Println("  gennoise percentageMin percentageMax size output.cmpack  (generate a random test volume)")
	fmt.Println("  bench input.cmpack regionSize count                (batch-extract count random regions and report timing)")
}

func fail(err error) {
	fmt.Println("Error:", err)
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "extract":
		if len(os.Args) < 4 {
			usage()
			os.Exit(1)
		}
		runExtract(os.Args[2], os.Args[3], len(os.Args) < 5 || os.Args[4] != "nomerge")
	case "pack":
		if len(os.Args) < 4 {
			usage()
			os.Exit(1)
		}
		bpp := uint8(8)
		if len(os.Args) >= 5 {
			var b int
			if _, err := fmt.Sscan(os.Args[4], &b); err != nil {
				fail(err)
			}
			bpp = uint8(b)
		}
		runPack(os.Args[2], os.Args[3], bpp)
	case "unpack":
		if len(os.Args) != 4 {
			usage()
			os.Exit(1)
		}
		runUnpack(os.Args[2], os.Args[3])
	case "gennoise":
		if len(os.Args) != 6 {
			usage()
			os.Exit(1)
		}
		runGenNoise(os.Args[2], os.Args[3], os.Args[4], os.Args[5])
	case "bench":
		if len(os.Args) != 5 {
			usage()
			os.Exit(1)
		}
		runBench(os.Args[2], os.Args[3], os.Args[4])
	default:
		usage()
		os.Exit(1)
	}

	fmt.Println("Operation completed!")
}

func runExtract(inPath, outPath string, mergeQuads bool) {
	data, err := os.ReadFile(inPath)
	if err != nil {
		fail(err)
	}
	vol, pal, _, err := api.UnpackVolume(data)
	if err != nil {
		fail(err)
	}
	glb, err := api.ExtractVolumeToGLB(vol, pal, mergeQuads)
	if err != nil {
		fail(err)
	}
	if err := os.WriteFile(outPath, glb, 0o644); err != nil {
		fail(err)
	}
}

func runPack(inPath, outPath string, bpp uint8) {
	f, err := os.Open(inPath)
	if err != nil {
		fail(err)
	}
	defer f.Close()

	vol := volume.NewVolume[material.Material]()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		var x, y, z int32
		var idx int
		if _, err := fmt.Sscan(line, &x, &y, &z, &idx); err != nil {
			fail(fmt.Errorf("parsing %q: %w", line, err))
		}
		vol.Set(x, y, z, material.Material{Index: uint8(idx)})
	}
	if err := scanner.Err(); err != nil {
		fail(err)
	}

	data, err := api.PackVolume(vol, material.DefaultPalette(), bpp)
	if err != nil {
		fail(err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		fail(err)
	}
}

func runUnpack(inPath, outPath string) {
	data, err := os.ReadFile(inPath)
	if err != nil {
		fail(err)
	}
	vol, _, _, err := api.UnpackVolume(data)
	if err != nil {
		fail(err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		fail(err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	defer w.Flush()
	for _, coord := range vol.PageCoords() {
		page, ok := vol.PageAt(coord)
		if !ok {
			continue
		}
		base := vecmath.IVec3{X: coord.X * volume.PageSize, Y: coord.Y * volume.PageSize, Z: coord.Z * volume.PageSize}
		for ly := int32(0); ly < volume.PageSize; ly++ {
			for lz := int32(0); lz < volume.PageSize; lz++ {
				for lx := int32(0); lx < volume.PageSize; lx++ {
					m := page.Get(lx, ly, lz)
					if m.IsEmpty() {
						continue
					}
					fmt.Fprintf(w, "%d %d %d %d\n", base.X+lx, base.Y+ly, base.Z+lz, m.Index)
				}
			}
		}
	}
}

func runGenNoise(minArg, maxArg, sizeArg, outPath string) {
	var minP, maxP float64
	var size int32
	if _, err := fmt.Sscan(minArg, &minP); err != nil {
		fail(err)
	}
	if _, err := fmt.Sscan(maxArg, &maxP); err != nil {
		fail(err)
	}
	if _, err := fmt.Sscan(sizeArg, &size); err != nil {
		fail(err)
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	vol := genvolume.NoiseRange(size, minP, maxP, r)

	data, err := api.PackVolume(vol, material.DefaultPalette(), 8)
	if err != nil {
		fail(err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		fail(err)
	}
}

func runBench(inPath, regionSizeArg, countArg string) {
	var regionSize, count int32
	if _, err := fmt.Sscan(regionSizeArg, &regionSize); err != nil {
		fail(err)
	}
	if _, err := fmt.Sscan(countArg, &count); err != nil {
		fail(err)
	}

	data, err := os.ReadFile(inPath)
	if err != nil {
		fail(err)
	}
	vol, _, _, err := api.UnpackVolume(data)
	if err != nil {
		fail(err)
	}

	lower, upper, ok := vol.Bounds()
	if !ok {
		fail(fmt.Errorf("volume has no allocated pages"))
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	m := batch.NewMesher(4, vol, material.SolidVsEmpty, material.ContributesToAO, cubic.Options{MergeQuads: true}, nil)
	defer m.Stop()

	span := func(lo, hi int32) int32 {
		d := hi - lo - regionSize
		if d <= 0 {
			return 0
		}
		return d
	}
	spanX, spanY, spanZ := span(lower.X, upper.X), span(lower.Y, upper.Y), span(lower.Z, upper.Z)

	enqueued := int32(0)
	for enqueued < count {
		origin := vecmath.IVec3{
			X: lower.X + r.Int31n(spanX + 1),
			Y: lower.Y + r.Int31n(spanY + 1),
			Z: lower.Z + r.Int31n(spanZ + 1),
		}
		reg := region.NewRegion(origin, origin.Add(vecmath.IVec3{X: regionSize, Y: regionSize, Z: regionSize}))
		if m.Enqueue(batch.Request[material.Material]{Region: reg, Version: 1}) {
			enqueued++
		}
	}

	start := time.Now()
	var totalTriangles int
	for i := int32(0); i < enqueued; i++ {
		res := <-m.Results()
		if res.Err != nil {
			fail(res.Err)
		}
		totalTriangles += res.Mesh.NumTriangles()
	}
	elapsed := time.Since(start)

	fmt.Printf("extracted %d regions, %d triangles total, %v elapsed (%v/region)\n",
		enqueued, totalTriangles, elapsed, elapsed/time.Duration(enqueued))
}
