/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package svgpath

import "fmt"

// Options configures the coordinate transform applied by Execute.
// Absolute coordinates become outX = x*Scale + TranslateX,
// outY = y*yFlip*Scale + TranslateY, with yFlip = -1 when FlipY is true
// (the default), +1 otherwise. Relative deltas use Scale and the yFlip
// sign but never the translation: the translation is already baked into
// the current point they're added to.
type Options struct {
	FlipY      bool
	Scale      float64
	TranslateX float64
	TranslateY float64
}

// DefaultOptions returns the executor defaults: Y-flipped, unit scale,
// no translation.
func DefaultOptions() Options {
	return Options{FlipY: true, Scale: 1}
}

func (o Options) yFlip() float64 {
	if o.FlipY {
		return -1
	}
	return 1
}

func (o Options) scale() float64 {
	if o.Scale == 0 {
		return 1
	}
	return o.Scale
}

// prevKind tracks which curve command preceded the current one, needed
// to decide whether S/T may reflect the previous control point.
type prevKind int

const (
	prevNone prevKind = iota
	prevCurveC
	prevCurveS
	prevQuadQ
	prevQuadT
)

// executor walks a tokenized path, maintaining current point, subpath
// start, last control point, and the previous command kind, and emits
// decomposed operations to a PathSink.
type executor struct {
	tok  *tokenizer
	sink PathSink
	opts Options

	curX, curY     float64
	startX, startY float64
	ctrlX, ctrlY   float64
	prev           prevKind
}

// Execute parses and runs the path data `d` against sink using opts.
func Execute(d string, sink PathSink, opts Options) error {
	ex := &executor{tok: newTokenizer(d), sink: sink, opts: opts}
	return ex.run()
}

func (ex *executor) run() error {
	var cmd byte
	have := false
	for {
		next, ok := ex.tok.nextCommand()
		if ok {
			cmd = next
			have = true
		} else if ex.tok.atEOF() {
			return nil
		} else if !have {
			return fmt.Errorf("svgpath: path does not start with a command letter")
		}
		// else: repeat the previous command with the next parameter set.

		if err := ex.runCommand(cmd); err != nil {
			return err
		}

		// Implicit repetition: M repeats as L, m repeats as l.
		if cmd == 'M' {
			cmd = 'L'
		} else if cmd == 'm' {
			cmd = 'l'
		}
	}
}

func (ex *executor) tx(x float64) float64 { return x*ex.opts.scale() + ex.opts.TranslateX }
func (ex *executor) ty(y float64) float64 { return y*ex.opts.yFlip()*ex.opts.scale() + ex.opts.TranslateY }
func (ex *executor) dx(x float64) float64 { return x * ex.opts.scale() }
func (ex *executor) dy(y float64) float64 { return y * ex.opts.yFlip() * ex.opts.scale() }

func (ex *executor) runCommand(cmd byte) error {
	switch cmd {
	case 'M', 'm':
		x, y, err := ex.readPair()
		if err != nil {
			return err
		}
		if cmd == 'm' {
			x, y = ex.curX+ex.dx(x), ex.curY+ex.dy(y)
		} else {
			x, y = ex.tx(x), ex.ty(y)
		}
		ex.curX, ex.curY = x, y
		ex.startX, ex.startY = x, y
		ex.sink.MoveTo(x, y)
		ex.prev = prevNone
		return nil

	case 'L', 'l':
		x, y, err := ex.readPair()
		if err != nil {
			return err
		}
		if cmd == 'l' {
			x, y = ex.curX+ex.dx(x), ex.curY+ex.dy(y)
		} else {
			x, y = ex.tx(x), ex.ty(y)
		}
		ex.curX, ex.curY = x, y
		ex.sink.LineTo(x, y)
		ex.prev = prevNone
		return nil

	case 'H', 'h':
		x, err := ex.tok.nextNumber()
		if err != nil {
			return err
		}
		if cmd == 'h' {
			x = ex.curX + ex.dx(x)
		} else {
			x = ex.tx(x)
		}
		ex.curX = x
		ex.sink.LineTo(ex.curX, ex.curY)
		ex.prev = prevNone
		return nil

	case 'V', 'v':
		y, err := ex.tok.nextNumber()
		if err != nil {
			return err
		}
		if cmd == 'v' {
			y = ex.curY + ex.dy(y)
		} else {
			y = ex.ty(y)
		}
		ex.curY = y
		ex.sink.LineTo(ex.curX, ex.curY)
		ex.prev = prevNone
		return nil

	case 'C', 'c':
		c1x, c1y, err := ex.readPair()
		if err != nil {
			return err
		}
		c2x, c2y, err := ex.readPair()
		if err != nil {
			return err
		}
		x, y, err := ex.readPair()
		if err != nil {
			return err
		}
		if cmd == 'c' {
			c1x, c1y = ex.curX+ex.dx(c1x), ex.curY+ex.dy(c1y)
			c2x, c2y = ex.curX+ex.dx(c2x), ex.curY+ex.dy(c2y)
			x, y = ex.curX+ex.dx(x), ex.curY+ex.dy(y)
		} else {
			c1x, c1y = ex.tx(c1x), ex.ty(c1y)
			c2x, c2y = ex.tx(c2x), ex.ty(c2y)
			x, y = ex.tx(x), ex.ty(y)
		}
		ex.sink.CurveTo(c1x, c1y, c2x, c2y, x, y)
		ex.ctrlX, ex.ctrlY = c2x, c2y
		ex.curX, ex.curY = x, y
		ex.prev = prevCurveC
		return nil

	case 'S', 's':
		c2x, c2y, err := ex.readPair()
		if err != nil {
			return err
		}
		x, y, err := ex.readPair()
		if err != nil {
			return err
		}
		if cmd == 's' {
			c2x, c2y = ex.curX+ex.dx(c2x), ex.curY+ex.dy(c2y)
			x, y = ex.curX+ex.dx(x), ex.curY+ex.dy(y)
		} else {
			c2x, c2y = ex.tx(c2x), ex.ty(c2y)
			x, y = ex.tx(x), ex.ty(y)
		}
		c1x, c1y := ex.reflectedControl(ex.prev == prevCurveC || ex.prev == prevCurveS)
		ex.sink.CurveTo(c1x, c1y, c2x, c2y, x, y)
		ex.ctrlX, ex.ctrlY = c2x, c2y
		ex.curX, ex.curY = x, y
		ex.prev = prevCurveS
		return nil

	case 'Q', 'q':
		cx, cy, err := ex.readPair()
		if err != nil {
			return err
		}
		x, y, err := ex.readPair()
		if err != nil {
			return err
		}
		if cmd == 'q' {
			cx, cy = ex.curX+ex.dx(cx), ex.curY+ex.dy(cy)
			x, y = ex.curX+ex.dx(x), ex.curY+ex.dy(y)
		} else {
			cx, cy = ex.tx(cx), ex.ty(cy)
			x, y = ex.tx(x), ex.ty(y)
		}
		ex.sink.QuadraticCurveTo(cx, cy, x, y)
		ex.ctrlX, ex.ctrlY = cx, cy
		ex.curX, ex.curY = x, y
		ex.prev = prevQuadQ
		return nil

	case 'T', 't':
		x, y, err := ex.readPair()
		if err != nil {
			return err
		}
		if cmd == 't' {
			x, y = ex.curX+ex.dx(x), ex.curY+ex.dy(y)
		} else {
			x, y = ex.tx(x), ex.ty(y)
		}
		cx, cy := ex.reflectedControl(ex.prev == prevQuadQ || ex.prev == prevQuadT)
		ex.sink.QuadraticCurveTo(cx, cy, x, y)
		ex.ctrlX, ex.ctrlY = cx, cy
		ex.curX, ex.curY = x, y
		ex.prev = prevQuadT
		return nil

	case 'A', 'a':
		rx, err := ex.tok.nextNumber()
		if err != nil {
			return err
		}
		ry, err := ex.tok.nextNumber()
		if err != nil {
			return err
		}
		rot, err := ex.tok.nextNumber()
		if err != nil {
			return err
		}
		large, err := ex.tok.nextFlag()
		if err != nil {
			return err
		}
		sweep, err := ex.tok.nextFlag()
		if err != nil {
			return err
		}
		x, y, err := ex.readPair()
		if err != nil {
			return err
		}
		x1, y1 := ex.curX, ex.curY
		if cmd == 'a' {
			x, y = ex.curX+ex.dx(x), ex.curY+ex.dy(y)
		} else {
			x, y = ex.tx(x), ex.ty(y)
		}
		rxOut, ryOut := ex.dx(rx), ex.dx(ry)
		if rxOut < 0 {
			rxOut = -rxOut
		}
		if ryOut < 0 {
			ryOut = -ryOut
		}
		// A flipped Y axis mirrors the arc's sense of direction; invert
		// sweep so the visually correct side is still drawn.
		effectiveSweep := sweep
		if ex.opts.FlipY {
			effectiveSweep = !sweep
		}
		segs := arcToBezier(x1, y1, rxOut, ryOut, rot, large, effectiveSweep, x, y)
		for _, s := range segs {
			ex.sink.CurveTo(s.c1x, s.c1y, s.c2x, s.c2y, s.x, s.y)
		}
		ex.curX, ex.curY = x, y
		ex.prev = prevNone
		return nil

	case 'Z', 'z':
		ex.sink.Close()
		ex.curX, ex.curY = ex.startX, ex.startY
		ex.prev = prevNone
		return nil
	}
	return fmt.Errorf("svgpath: unsupported command %q", cmd)
}

func (ex *executor) readPair() (float64, float64, error) {
	x, err := ex.tok.nextNumber()
	if err != nil {
		return 0, 0, err
	}
	y, err := ex.tok.nextNumber()
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// reflectedControl returns the control point for a smooth curve command,
// reflecting the last control point across the current point when
// reflect is true, and otherwise collapsing to the current point.
func (ex *executor) reflectedControl(reflect bool) (float64, float64) {
	if !reflect {
		return ex.curX, ex.curY
	}
	return 2*ex.curX - ex.ctrlX, 2*ex.curY - ex.ctrlY
}
