package postprocess

import "image"

// RemoveSmallClusters clears 8-connected groups of opaque pixels smaller than
// minRatio of all opaque pixels. Stray points far from the survey area render
// as such specks.
func RemoveSmallClusters(img *image.NRGBA, minRatio float64) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	labels, sizes, total := label(img)
	if total == 0 || len(sizes) <= 1 {
		return img
	}
	minSize := int(float64(total) * minRatio)

	out := image.NewNRGBA(b)
	copy(out.Pix, img.Pix)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			l := labels[y*w+x]
			if l < 0 || sizes[l] >= minSize {
				continue
			}
			i := out.PixOffset(b.Min.X+x, b.Min.Y+y)
			out.Pix[i], out.Pix[i+1], out.Pix[i+2], out.Pix[i+3] = 0, 0, 0, 0
		}
	}
	return out
}

// label flood-fills opaque pixels. It returns the component id per pixel (-1 for
// transparent), the size of each component and the opaque pixel count.
func label(img *image.NRGBA) ([]int, []int, int) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	labels := make([]int, w*h)
	total := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if img.Pix[img.PixOffset(b.Min.X+x, b.Min.Y+y)+3] > 0 {
				labels[y*w+x] = -2
				total++
			} else {
				labels[y*w+x] = -1
			}
		}
	}

	var sizes []int
	queue := make([]int, 0, 1024)
	for start := range labels {
		if labels[start] != -2 {
			continue
		}
		id := len(sizes)
		labels[start] = id
		queue = append(queue[:0], start)
		size := 0
		for len(queue) > 0 {
			cur := queue[len(queue)-1]
			queue = queue[:len(queue)-1]
			size++
			cx, cy := cur%w, cur/w
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := cx+dx, cy+dy
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					if n := ny*w + nx; labels[n] == -2 {
						labels[n] = id
						queue = append(queue, n)
					}
				}
			}
		}
		sizes = append(sizes, size)
	}
	return labels, sizes, total
}
