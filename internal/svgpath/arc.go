/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package svgpath

import "math"

// cubicArc is one cubic Bézier segment of an arc-to-Bézier conversion,
// expressed in the same coordinate frame as its input endpoints.
type cubicArc struct {
	c1x, c1y, c2x, c2y, x, y float64
}

// arcToBezier converts an SVG endpoint-parameterized elliptical arc
// (x1,y1) -> (x2,y2) into a sequence of cubic Bézier segments, following
// the SVG 1.1 appendix F.6 endpoint-to-center conversion.
func arcToBezier(x1, y1, rx, ry, phiDeg float64, largeArc, sweep bool, x2, y2 float64) []cubicArc {
	if x1 == x2 && y1 == y2 {
		return nil
	}
	rx = math.Abs(rx)
	ry = math.Abs(ry)
	if rx == 0 || ry == 0 {
		// Degenerate radius: a straight line, represented as a cubic
		// whose control points sit on the line itself.
		return []cubicArc{{
			c1x: x1 + (x2-x1)/3, c1y: y1 + (y2-y1)/3,
			c2x: x1 + 2*(x2-x1)/3, c2y: y1 + 2*(y2-y1)/3,
			x: x2, y: y2,
		}}
	}

	phi := phiDeg * math.Pi / 180
	cosPhi := math.Cos(phi)
	sinPhi := math.Sin(phi)

	// Step 1: compute (x1', y1'), the midpoint-centered, -phi-rotated
	// coordinates of the start point.
	dx2 := (x1 - x2) / 2
	dy2 := (y1 - y2) / 2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	// Step 2: correct out-of-range radii.
	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	// Step 3: compute (cx', cy'), the center in the transformed frame.
	sign := 1.0
	if largeArc == sweep {
		sign = -1.0
	}
	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	co := 0.0
	if den != 0 {
		v := num / den
		if v < 0 {
			v = 0
		}
		co = sign * math.Sqrt(v)
	}
	cxp := co * (rx * y1p / ry)
	cyp := co * -(ry * x1p / rx)

	// Step 4: transform the center back to the original frame.
	cx := cosPhi*cxp - sinPhi*cyp + (x1+x2)/2
	cy := sinPhi*cxp + cosPhi*cyp + (y1+y2)/2

	theta1 := angleBetween(1, 0, (x1p-cxp)/rx, (y1p-cyp)/ry)
	dtheta := angleBetween((x1p-cxp)/rx, (y1p-cyp)/ry, (-x1p-cxp)/rx, (-y1p-cyp)/ry)

	if !sweep && dtheta > 0 {
		dtheta -= 2 * math.Pi
	} else if sweep && dtheta < 0 {
		dtheta += 2 * math.Pi
	}

	segments := int(math.Ceil(math.Abs(dtheta) / (math.Pi / 2)))
	if segments < 1 {
		segments = 1
	}
	delta := dtheta / float64(segments)

	out := make([]cubicArc, 0, segments)
	theta := theta1
	for i := 0; i < segments; i++ {
		out = append(out, ellipseSegmentToCubic(cx, cy, rx, ry, cosPhi, sinPhi, theta, delta))
		theta += delta
	}
	return out
}

// ellipseSegmentToCubic converts one sub-arc of angle `delta` starting
// at angle `theta` on the given ellipse into a single cubic segment, per
// the standard tangent-length approximation
// alpha = sin(delta) * (sqrt(4+3*tan^2(delta/4)) - 1) / 3.
func ellipseSegmentToCubic(cx, cy, rx, ry, cosPhi, sinPhi, theta, delta float64) cubicArc {
	t1 := theta
	t2 := theta + delta

	cosT1, sinT1 := math.Cos(t1), math.Sin(t1)
	cosT2, sinT2 := math.Cos(t2), math.Sin(t2)

	x1, y1 := ellipsePoint(cx, cy, rx, ry, cosPhi, sinPhi, cosT1, sinT1)
	x2, y2 := ellipsePoint(cx, cy, rx, ry, cosPhi, sinPhi, cosT2, sinT2)

	tanHalf := math.Tan(delta / 4)
	alpha := math.Sin(delta) * (math.Sqrt(4+3*tanHalf*tanHalf) - 1) / 3

	// Tangent vectors at t1 and t2 on the un-rotated ellipse, then
	// rotated by phi, scaled by alpha.
	dx1, dy1 := ellipseTangent(rx, ry, cosPhi, sinPhi, cosT1, sinT1)
	dx2, dy2 := ellipseTangent(rx, ry, cosPhi, sinPhi, cosT2, sinT2)

	return cubicArc{
		c1x: x1 + alpha*dx1,
		c1y: y1 + alpha*dy1,
		c2x: x2 - alpha*dx2,
		c2y: y2 - alpha*dy2,
		x:   x2,
		y:   y2,
	}
}

func ellipsePoint(cx, cy, rx, ry, cosPhi, sinPhi, cosT, sinT float64) (float64, float64) {
	ex := rx * cosT
	ey := ry * sinT
	return cx + cosPhi*ex - sinPhi*ey, cy + sinPhi*ex + cosPhi*ey
}

func ellipseTangent(rx, ry, cosPhi, sinPhi, cosT, sinT float64) (float64, float64) {
	ex := -rx * sinT
	ey := ry * cosT
	return cosPhi*ex - sinPhi*ey, sinPhi*ex + cosPhi*ey
}

// angleBetween returns the signed angle from vector (ux,uy) to vector
// (vx,vy).
func angleBetween(ux, uy, vx, vy float64) float64 {
	dot := ux*vx + uy*vy
	lenProd := math.Hypot(ux, uy) * math.Hypot(vx, vy)
	if lenProd == 0 {
		return 0
	}
	cosAngle := dot / lenProd
	if cosAngle > 1 {
		cosAngle = 1
	} else if cosAngle < -1 {
		cosAngle = -1
	}
	angle := math.Acos(cosAngle)
	if ux*vy-uy*vx < 0 {
		angle = -angle
	}
	return angle
}
