package render

import "github.com/chewxy/math32"

const depthMax = 65535 // uint16 max: z-buffer stores smaller-is-closer depth

// depthQuantize converts a clip-space z (expected in [0,1] after the
// projection/viewport transform) to the depth buffer's uint16 domain.
func depthQuantize(z float32) uint16 {
	return uint16(math32.Abs(z * depthMax))
}

// DrawLine draws a flat-colored Bresenham line with no depth test,
// used for debug overlays and wireframe edges that don't need
// occlusion against the scene.
func (fb *Framebuffer) DrawLine(x1, y1, x2, y2 int, c Color) {
	dx := x2 - x1
	dy := y2 - y1
	dx1 := iabs(dx)
	dy1 := iabs(dy)
	px := 2*dy1 - dx1
	py := 2*dx1 - dy1

	var x, y, xe, ye int

	if dy1 <= dx1 {
		if dx >= 0 {
			x, y, xe = x1, y1, x2
		} else {
			x, y, xe = x2, y2, x1
		}
		fb.SetPixel(x, y, c)
		for i := 0; x < xe; i++ {
			x++
			if px < 0 {
				px += 2 * dy1
			} else {
				if (dx < 0 && dy < 0) || (dx > 0 && dy > 0) {
					y++
				} else {
					y--
				}
				px += 2 * (dy1 - dx1)
			}
			fb.SetPixel(x, y, c)
		}
	} else {
		if dy >= 0 {
			x, y, ye = x1, y1, y2
		} else {
			x, y, ye = x2, y2, y1
		}
		fb.SetPixel(x, y, c)
		for i := 0; y < ye; i++ {
			y++
			if py <= 0 {
				py += 2 * dx1
			} else {
				if (dx < 0 && dy < 0) || (dx > 0 && dy > 0) {
					x++
				} else {
					x--
				}
				py += 2 * (dx1 - dy1)
			}
			fb.SetPixel(x, y, c)
		}
	}
}

// DrawLineDepth draws a depth-tested Bresenham line between two
// screen-space vertices (x,y already projected, z in [0,1]). Each
// pixel is written only if its quantized depth is strictly less than
// what's currently in the z-buffer at that position.
func (fb *Framebuffer) DrawLineDepth(p0, p1 Vertex, c Color) {
	x1 := int(math32.Floor(p0.Position.X + 0.5))
	x2 := int(math32.Floor(p1.Position.X + 0.5))
	y1 := int(math32.Floor(p0.Position.Y + 0.5))
	y2 := int(math32.Floor(p1.Position.Y + 0.5))
	z := depthQuantize(p0.Position.Z)

	draw := func(x, y int) {
		if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
			return
		}
		idx := y*fb.Width + x
		if fb.Depth[idx] > z {
			fb.Depth[idx] = z
			fb.setBack(idx, c)
		}
	}

	dx := x2 - x1
	dy := y2 - y1
	dx1 := iabs(dx)
	dy1 := iabs(dy)
	px := 2*dy1 - dx1
	py := 2*dx1 - dy1

	var x, y, xe, ye int

	if dy1 <= dx1 {
		if dx >= 0 {
			x, y, xe = x1, y1, x2
		} else {
			x, y, xe = x2, y2, x1
		}
		draw(x, y)
		for i := 0; x < xe; i++ {
			x++
			if px < 0 {
				px += 2 * dy1
			} else {
				if (dx < 0 && dy < 0) || (dx > 0 && dy > 0) {
					y++
				} else {
					y--
				}
				px += 2 * (dy1 - dx1)
			}
			draw(x, y)
		}
	} else {
		if dy >= 0 {
			x, y, ye = x1, y1, y2
		} else {
			x, y, ye = x2, y2, y1
		}
		draw(x, y)
		for i := 0; y < ye; i++ {
			y++
			if py <= 0 {
				py += 2 * dx1
			} else {
				if (dx < 0 && dy < 0) || (dx > 0 && dy > 0) {
					x++
				} else {
					x--
				}
				py += 2 * (dx1 - dy1)
			}
			draw(x, y)
		}
	}
}

func iabs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// DrawTexturedTriangle rasterizes a screen-space triangle with
// perspective-correct UV interpolation and a depth test, sampling img
// for each covered pixel. Vertex positions are expected already
// projected and viewport-transformed (x,y in pixel space, z usable as
// a depth metric, not necessarily linear).
func (fb *Framebuffer) DrawTexturedTriangle(tri Triangle, img *Image) {
	x1 := int(tri.A.Position.X + 0.5)
	x2 := int(tri.B.Position.X + 0.5)
	x3 := int(tri.C.Position.X + 0.5)
	y1 := int(tri.A.Position.Y + 0.5)
	y2 := int(tri.B.Position.Y + 0.5)
	y3 := int(tri.C.Position.Y + 0.5)

	z1inv := 1.0 / tri.A.Position.Z
	z2inv := 1.0 / tri.B.Position.Z
	z3inv := 1.0 / tri.C.Position.Z

	u1 := tri.A.UV.X * z1inv
	u2 := tri.B.UV.X * z2inv
	u3 := tri.C.UV.X * z3inv
	v1 := tri.A.UV.Y * z1inv
	v2 := tri.B.UV.Y * z2inv
	v3 := tri.C.UV.Y * z3inv

	if y1 > y2 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
		u1, u2 = u2, u1
		v1, v2 = v2, v1
		z1inv, z2inv = z2inv, z1inv
	}
	if y1 > y3 {
		x1, x3 = x3, x1
		y1, y3 = y3, y1
		u1, u3 = u3, u1
		v1, v3 = v3, v1
		z1inv, z3inv = z3inv, z1inv
	}
	if y2 > y3 {
		x2, x3 = x3, x2
		y2, y3 = y3, y2
		u2, u3 = u3, u2
		v2, v3 = v3, v2
		z2inv, z3inv = z3inv, z2inv
	}

	dy1, dx1 := y2-y1, x2-x1
	dy2, dx2 := y3-y1, x3-x1
	du1, dv1, dz1 := u2-u1, v2-v1, z2inv-z1inv
	du2, dv2, dz2 := u3-u1, v3-v1, z3inv-z1inv

	daxStep := stepOf(float32(dx1), dy1)
	dbxStep := stepOf(float32(dx2), dy2)
	du1Step := stepOf(du1, dy1)
	dv1Step := stepOf(dv1, dy1)
	dz1Step := stepOf(dz1, dy1)
	du2Step := stepOf(du2, dy2)
	dv2Step := stepOf(dv2, dy2)
	dz2Step := stepOf(dz2, dy2)

	drawPixel := func(x, y int, u, v, z float32) {
		if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
			return
		}
		idx := y*fb.Width + x
		zval := depthQuantize(z)
		if fb.Depth[idx] > zval {
			fb.Depth[idx] = zval
			sample := ColorWhite
			if img != nil {
				sample = img.Sample(u, v)
			}
			fb.setBack(idx, sample)
		}
	}

	drawScanline := func(y, ax, bx int, su, eu, sv, ev, sz, ez float32) {
		if ax > bx {
			ax, bx = bx, ax
			su, eu = eu, su
			sv, ev = ev, sv
			sz, ez = ez, sz
		}
		width := bx - ax
		if width == 0 {
			return
		}
		tstep := 1.0 / float32(width)
		t := float32(0)
		for x := ax; x < bx; x++ {
			u := su + t*(eu-su)
			v := sv + t*(ev-sv)
			z := sz + t*(ez-sz)
			drawPixel(x, y, u/z, v/z, 1.0/z)
			t += tstep
		}
	}

	for y := y1; y <= y2; y++ {
		ax := x1 + int(float32(y-y1)*daxStep)
		bx := x1 + int(float32(y-y1)*dbxStep)
		su := u1 + float32(y-y1)*du1Step
		eu := u1 + float32(y-y1)*du2Step
		sv := v1 + float32(y-y1)*dv1Step
		ev := v1 + float32(y-y1)*dv2Step
		sz := z1inv + float32(y-y1)*dz1Step
		ez := z1inv + float32(y-y1)*dz2Step
		drawScanline(y, ax, bx, su, eu, sv, ev, sz, ez)
	}

	dy1, dx1 = y3-y2, x3-x2
	du1, dv1, dz1 = u3-u2, v3-v2, z3inv-z2inv

	daxStep = stepOf(float32(dx1), dy1)
	du1Step = stepOf(du1, dy1)
	dv1Step = stepOf(dv1, dy1)
	dz1Step = stepOf(dz1, dy1)

	for y := y2; y <= y3; y++ {
		ax := x2 + int(float32(y-y2)*daxStep)
		bx := x1 + int(float32(y-y1)*dbxStep)
		su := u2 + float32(y-y2)*du1Step
		eu := u1 + float32(y-y1)*du2Step
		sv := v2 + float32(y-y2)*dv1Step
		ev := v1 + float32(y-y1)*dv2Step
		sz := z2inv + float32(y-y2)*dz1Step
		ez := z1inv + float32(y-y1)*dz2Step
		drawScanline(y, ax, bx, su, eu, sv, ev, sz, ez)
	}
}

func stepOf(d float32, dy int) float32 {
	if dy == 0 {
		return 0
	}
	return d / float32(iabs(dy))
}
