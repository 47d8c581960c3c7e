package glic

import "math"

// Constants for the CIE-based color spaces (LAB, LUV, XYZ, YXY), taken
// verbatim from the D65 reference white and the sRGB companding curve.
const (
	d65X = 0.950456
	d65Y = 1.0
	d65Z = 1.088754

	cieEpsilon   = 216.0 / 24389.0
	cieK         = 24389.0 / 27.0
	cieK2epsilon = cieK * cieEpsilon

	rangeX = 100.0 * (0.4124 + 0.3576 + 0.1805)
	rangeY = 100.0
	rangeZ = 100.0 * (0.0193 + 0.1192 + 0.9505)

	mepsilon    = 1.0e-10
	corrRatio   = 1.0 / 2.4
	oneThird    = 1.0 / 3.0
	oneHSixteen = 1.0 / 116.0

	uMax = 0.436 * 255.0
	vMax = 0.615 * 255.0
)

var d65fx4 = 4.0 * d65X / (d65X + 15.0*d65Y + 3.0*d65Z)
var d65fy9 = 9.0 * d65Y / (d65X + 15.0*d65Y + 3.0*d65Z)

func mapf(value, inMin, inMax, outMin, outMax float64) float64 {
	return outMin + (value-inMin)*(outMax-outMin)/(inMax-inMin)
}

func correctionxyz(n float64) float64 {
	if n > 0.04045 {
		return math.Pow((n+0.055)/1.055, 2.4) * 100.0
	}
	return (n / 12.92) * 100.0
}

func recorrectionxyz(n float64) float64 {
	if n > 0.0031308 {
		return 1.055*math.Pow(n, corrRatio) - 0.055
	}
	return 12.92 * n
}

func perceptibleReciprocal(x float64) float64 {
	sgn := 1.0
	if x < 0 {
		sgn = -1.0
	}
	if sgn*x >= mepsilon {
		return 1.0 / x
	}
	return sgn / mepsilon
}

type vec3 struct{ x, y, z float64 }

func toXYZVec(rr, gg, bb float64) vec3 {
	r := correctionxyz(rr)
	g := correctionxyz(gg)
	b := correctionxyz(bb)
	return vec3{
		r*0.4124 + g*0.3576 + b*0.1805,
		r*0.2126 + g*0.7152 + b*0.0722,
		r*0.0193 + g*0.1192 + b*0.9505,
	}
}

func fromXYZVec(c Color, xx, yy, zz float64) Color {
	x := xx / 100.0
	y := yy / 100.0
	z := zz / 100.0

	r := int(math.Round(255.0 * recorrectionxyz(x*3.2406+y*-1.5372+z*-0.4986)))
	g := int(math.Round(255.0 * recorrectionxyz(x*-0.9689+y*1.8758+z*0.0415)))
	b := int(math.Round(255.0 * recorrectionxyz(x*0.0557+y*-0.2040+z*1.0570)))
	return BlendRGB(c, r, g, b)
}

// ToColorSpace projects c from RGB into cs. For RGB itself (and any
// out-of-range value) it returns c unchanged.
func ToColorSpace(c Color, cs ColorSpace) Color {
	switch cs {
	case OHTA:
		return toOHTA(c)
	case CMY:
		return toCMY(c)
	case HSB:
		return toHSB(c)
	case XYZ:
		return toXYZ(c)
	case YXY:
		return toYXY(c)
	case HCL:
		return toHCL(c)
	case LUV:
		return toLUV(c)
	case LAB:
		return toLAB(c)
	case HWB:
		return toHWB(c)
	case RGGBG:
		return toRGGBG(c)
	case YPbPr:
		return toYPbPr(c)
	case YCbCr:
		return toYCbCr(c)
	case YDbDr:
		return toYDbDr(c)
	case GS:
		return toGS(c)
	case YUV:
		return toYUV(c)
	default:
		return c
	}
}

// FromColorSpace is the inverse projection of ToColorSpace.
func FromColorSpace(c Color, cs ColorSpace) Color {
	switch cs {
	case OHTA:
		return fromOHTA(c)
	case CMY:
		return fromCMY(c)
	case HSB:
		return fromHSB(c)
	case XYZ:
		return fromXYZ(c)
	case YXY:
		return fromYXY(c)
	case HCL:
		return fromHCL(c)
	case LUV:
		return fromLUV(c)
	case LAB:
		return fromLAB(c)
	case HWB:
		return fromHWB(c)
	case RGGBG:
		return fromRGGBG(c)
	case YPbPr:
		return fromYPbPr(c)
	case YCbCr:
		return fromYCbCr(c)
	case YDbDr:
		return fromYDbDr(c)
	case GS:
		return fromGS(c)
	case YUV:
		return fromYUV(c)
	default:
		return c
	}
}

// toGS / fromGS: greyscale is deliberately not a true inverse. fromGS
// re-derives luma from whatever RGB happens to be in the packed value
// rather than reconstructing the original color.
func toGS(c Color) Color {
	l := int(GetLuma(c))
	return BlendRGB(c, l, l, l)
}

func fromGS(c Color) Color {
	return toGS(c)
}

func toYUV(c Color) Color {
	r, g, b := float64(GetR(c)), float64(GetG(c)), float64(GetB(c))
	y := int(0.299*r + 0.587*g + 0.114*b)
	u := int(mapf(-0.14713*r-0.28886*g+0.436*b, -uMax, uMax, 0, 255))
	v := int(mapf(0.615*r-0.51499*g-0.10001*b, -vMax, vMax, 0, 255))
	return BlendRGB(c, y, u, v)
}

func fromYUV(c Color) Color {
	y := float64(GetR(c))
	u := mapf(float64(GetG(c)), 0, 255, -uMax, uMax)
	v := mapf(float64(GetB(c)), 0, 255, -vMax, vMax)
	r := int(y + 1.13983*v)
	g := int(y - 0.39465*u - 0.58060*v)
	b := int(y + 2.03211*u)
	return BlendRGB(c, r, g, b)
}

func toYDbDr(c Color) Color {
	r, g, b := float64(GetR(c)), float64(GetG(c)), float64(GetB(c))
	y := int(0.299*r + 0.587*g + 0.114*b)
	db := int(127.5 + (-0.450*r-0.883*g+1.333*b)/2.666)
	dr := int(127.5 + (-1.333*r+1.116*g+0.217*b)/2.666)
	return BlendRGB(c, y, db, dr)
}

func fromYDbDr(c Color) Color {
	y := float64(GetR(c))
	db := (float64(GetG(c)) - 127.5) * 2.666
	dr := (float64(GetB(c)) - 127.5) * 2.666
	r := int(y + 9.2303716147657e-05*db - 0.52591263066186533*dr)
	g := int(y - 0.12913289889050927*db + 0.26789932820759876*dr)
	b := int(y + 0.66467905997895482*db - 7.9202543533108e-05*dr)
	return BlendRGB(c, r, g, b)
}

func toYCbCr(c Color) Color {
	r, g, b := float64(GetR(c)), float64(GetG(c)), float64(GetB(c))
	y := int(0.2988390*r + 0.5868110*g + 0.1143500*b)
	cb := int(-0.168736*r - 0.331264*g + 0.5*b + 127.5)
	cr := int(0.5*r - 0.418688*g - 0.081312*b + 127.5)
	return BlendRGB(c, y, cb, cr)
}

func fromYCbCr(c Color) Color {
	y := float64(GetR(c))
	cb := float64(GetG(c)) - 127.5
	cr := float64(GetB(c)) - 127.5
	r := int(y+1.402*cr) + 1
	g := int(y - 0.344136*cb - 0.714136*cr)
	b := int(y+1.772*cb) + 1
	return BlendRGB(c, r, g, b)
}

// toYPbPr / fromYPbPr use explicit mod-256 wraparound so that R and B
// come back exactly despite Pb/Pr being signed differences folded into a
// byte. G is not stored: fromYPbPr re-derives it from the truncated luma
// byte, so it can differ from the original by a couple of levels.
// Do not "clean up" the wraparound into a signed representation.
func toYPbPr(c Color) Color {
	r, b := int(GetR(c)), int(GetB(c))
	y := int(GetLuma(c))
	pb := b - y
	pr := r - y
	if pb < 0 {
		pb += 256
	}
	if pr < 0 {
		pr += 256
	}
	return BlendRGB(c, y, pb, pr)
}

func fromYPbPr(c Color) Color {
	y := int(GetR(c))
	b := int(GetG(c)) + y
	r := int(GetB(c)) + y
	if r > 255 {
		r -= 256
	}
	if b > 255 {
		b -= 256
	}
	g := int((float64(y) - 0.2126*float64(r) - 0.0722*float64(b)) / 0.7152)
	return BlendRGB(c, r, g, b)
}

func toRGGBG(c Color) Color {
	g := int(GetG(c))
	r := int(GetR(c)) - g
	b := int(GetB(c)) - g
	if r < 0 {
		r += 256
	}
	if b < 0 {
		b += 256
	}
	return BlendRGB(c, r, g, b)
}

func fromRGGBG(c Color) Color {
	g := int(GetG(c))
	r := int(GetR(c)) + g
	b := int(GetB(c)) + g
	if r > 255 {
		r -= 256
	}
	if b > 255 {
		b -= 256
	}
	return BlendRGB(c, r, g, b)
}

func toHSB(c Color) Color {
	r, g, b := int(GetR(c)), int(GetG(c)), int(GetB(c))
	mn := min3(r, g, b)
	mx := max3(r, g, b)
	delta := float64(mx - mn)
	sat := 0.0
	if mx > 0 {
		sat = delta / float64(mx)
	}
	bri := r255[mx]

	if delta == 0 {
		return BlendRGB(c, 0, int(sat*255), int(bri*255))
	}

	var hue float64
	switch {
	case r == mx:
		hue = float64(g-b) / delta
	case g == mx:
		hue = 2.0 + float64(b-r)/delta
	default:
		hue = 4.0 + float64(r-g)/delta
	}
	hue /= 6.0
	if hue < 0 {
		hue += 1.0
	}
	return BlendRGB(c, int(hue*255), int(sat*255), int(bri*255))
}

func fromHSB(c Color) Color {
	s := GetNG(c)
	v := GetNB(c)
	if s == 0 {
		x := int(v * 255)
		return BlendRGB(c, x, x, x)
	}

	h := 6.0 * GetNR(c)
	f := h - math.Floor(h)
	p := v * (1.0 - s)
	q := v * (1.0 - s*f)
	t := v * (1.0 - (s * (1.0 - f)))

	var r, g, b float64
	switch int(h) {
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	default:
		r, g, b = v, t, p
	}
	return BlendRGB(c, int(r*255), int(g*255), int(b*255))
}

func toHWB(c Color) Color {
	r, g, b := int(GetR(c)), int(GetG(c)), int(GetB(c))
	w := min3(r, g, b)
	v := max3(r, g, b)

	var hue int
	if v == w {
		hue = 255
	} else {
		var f, p float64
		switch {
		case r == w:
			f, p = float64(g-b), 3.0
		case g == w:
			f, p = float64(b-r), 5.0
		default:
			f, p = float64(r-g), 1.0
		}
		hue = int(math.Round(mapf((p-f/float64(v-w))/6.0, 0, 1, 0, 254)))
	}
	return BlendRGB(c, hue, w, 255-v)
}

func fromHWB(c Color) Color {
	h := int(GetR(c))
	b := 255 - int(GetB(c))
	if h == 255 {
		return BlendRGB(c, b, b, b)
	}

	hue := mapf(float64(h), 0, 254, 0, 6)
	v := r255[b]
	whiteness := GetNG(c)
	i := int(math.Floor(hue))
	f := hue - float64(i)
	if i&0x01 != 0 {
		f = 1.0 - f
	}
	n := whiteness + f*(v-whiteness)

	var r, g, bb float64
	switch i {
	case 1:
		r, g, bb = n, v, whiteness
	case 2:
		r, g, bb = whiteness, v, n
	case 3:
		r, g, bb = whiteness, n, v
	case 4:
		r, g, bb = n, whiteness, v
	case 5:
		r, g, bb = v, whiteness, n
	default:
		r, g, bb = v, n, whiteness
	}
	return BlendRGB(c, int(r*255), int(g*255), int(bb*255))
}

func toLAB(c Color) Color {
	xyz := toXYZVec(GetNR(c), GetNG(c), GetNB(c))
	xyz.x /= 100.0 * d65X
	xyz.y /= 100.0 * d65Y
	xyz.z /= 100.0 * d65Z

	f := func(v float64) float64 {
		if v > cieEpsilon {
			return math.Pow(v, oneThird)
		}
		return (cieK*v + 16.0) * oneHSixteen
	}
	x, y, z := f(xyz.x), f(xyz.y), f(xyz.z)

	l := 255.0 * (((116.0 * y) - 16.0) * 0.01)
	a := 255.0 * (0.5*(x-y) + 0.5)
	bb := 255.0 * (0.5*(y-z) + 0.5)
	return BlendRGB(c, int(math.Round(l)), int(math.Round(a)), int(math.Round(bb)))
}

func fromLAB(c Color) Color {
	l := 100 * GetNR(c)
	a := GetNG(c) - 0.5
	b := GetNB(c) - 0.5

	y := (l + 16.0) * oneHSixteen
	x := y + 2*a
	z := y - 2*b

	cube := func(v, linear float64) float64 {
		vvv := v * v * v
		if vvv > cieEpsilon {
			return vvv
		}
		return linear
	}
	x = cube(x, (116.0*x-16.0)/cieK)
	y = cube(y, l/cieK)
	z = cube(z, (116.0*z-16.0)/cieK)

	return fromXYZVec(c, rangeX*x, rangeY*y, rangeZ*z)
}

func toLUV(c Color) Color {
	xyz := toXYZVec(GetNR(c), GetNG(c), GetNB(c))
	xyz.x /= 100.0
	xyz.y /= 100.0
	xyz.z /= 100.0

	d := xyz.y
	var l float64
	if d > cieEpsilon {
		l = 116.0*math.Pow(d, oneThird) - 16.0
	} else {
		l = cieK * d
	}

	alpha := perceptibleReciprocal(xyz.x + 15.0*xyz.y + 3.0*xyz.z)
	l13 := 13.0 * l
	u := l13 * ((4.0 * alpha * xyz.x) - d65fx4)
	v := l13 * ((9.0 * alpha * xyz.y) - d65fy9)

	l /= 100.0
	u = (u + 134.0) / 354.0
	v = (v + 140.0) / 262.0

	return BlendRGB(c, int(math.Round(l*255)), int(math.Round(u*255)), int(math.Round(v*255)))
}

func fromLUV(c Color) Color {
	l := 100.0 * GetNR(c)
	u := 354.0*GetNG(c) - 134.0
	v := 262.0*GetNB(c) - 140.0

	var y float64
	if l > cieK2epsilon {
		y = math.Pow((l+16.0)*oneHSixteen, 3.0)
	} else {
		y = l / cieK
	}

	l13 := 13.0 * l
	l52 := 52.0 * l
	y5 := 5.0 * y
	l13u := l52 / (u + l13*d65fx4)
	x := ((y * ((39.0*l)/(v+l13*d65fy9) - 5.0)) + y5) / (((l13u-1.0)/3.0) + oneThird)
	z := (x * ((l13u - 1.0) / 3.0)) - y5

	return fromXYZVec(c, 100*x, 100*y, 100*z)
}

func toHCL(c Color) Color {
	r, g, b := GetNR(c), GetNG(c), GetNB(c)
	maxVal := max3f(r, g, b)
	chr := maxVal - min3f(r, g, b)

	h := 0.0
	if chr != 0 {
		switch {
		case r == maxVal:
			h = math.Mod((g-b)/chr+6.0, 6.0)
		case g == maxVal:
			h = (b-r)/chr + 2.0
		default:
			h = (r-g)/chr + 4.0
		}
	}

	return BlendRGB(c,
		int(math.Round((h/6.0)*255)),
		int(math.Round(chr*255)),
		int(math.Round(255*(0.298839*r+0.586811*g+0.114350*b))))
}

func fromHCL(c Color) Color {
	h := 6.0 * GetNR(c)
	chr := GetNG(c)
	l := GetNB(c)
	x := chr * (1.0 - math.Abs(math.Mod(h, 2.0)-1.0))

	var r, g, b float64
	switch {
	case h >= 0 && h < 1:
		r, g = chr, x
	case h >= 1 && h < 2:
		r, g = x, chr
	case h >= 2 && h < 3:
		g, b = chr, x
	case h >= 3 && h < 4:
		g, b = x, chr
	case h >= 4 && h < 5:
		r, b = x, chr
	default:
		r, b = chr, x
	}

	m := l - (0.298839*r + 0.586811*g + 0.114350*b)
	return BlendRGB(c,
		int(math.Round(255*(r+m))),
		int(math.Round(255*(g+m))),
		int(math.Round(255*(b+m))))
}

func toYXY(c Color) Color {
	xyz := toXYZVec(GetNR(c), GetNG(c), GetNB(c))
	sum := xyz.x + xyz.y + xyz.z
	x, y := 0.0, 0.0
	if xyz.x > 0 {
		x = xyz.x / sum
	}
	if xyz.y > 0 {
		y = xyz.y / sum
	}
	return BlendRGB(c,
		int(mapf(xyz.y, 0, rangeY, 0, 255)),
		int(mapf(x, 0, 1, 0, 255)),
		int(mapf(y, 0, 1, 0, 255)))
}

func fromYXY(c Color) Color {
	y := mapf(float64(GetR(c)), 0, 255, 0, rangeY)
	x := mapf(float64(GetG(c)), 0, 255, 0, 1.0)
	yy := mapf(float64(GetB(c)), 0, 255, 0, 1.0)
	divy := y / 1.0e-6
	if yy > 0 {
		divy = y / yy
	}
	return fromXYZVec(c, x*divy, y, (1-x-yy)*divy)
}

func toXYZ(c Color) Color {
	xyz := toXYZVec(GetNR(c), GetNG(c), GetNB(c))
	return BlendRGB(c,
		int(mapf(xyz.x, 0, rangeX, 0, 255)),
		int(mapf(xyz.y, 0, rangeY, 0, 255)),
		int(mapf(xyz.z, 0, rangeZ, 0, 255)))
}

func fromXYZ(c Color) Color {
	x := mapf(float64(GetR(c)), 0, 255, 0, rangeX)
	y := mapf(float64(GetG(c)), 0, 255, 0, rangeY)
	z := mapf(float64(GetB(c)), 0, 255, 0, rangeZ)
	return fromXYZVec(c, x, y, z)
}

func toCMY(c Color) Color {
	return BlendRGB(c, 255-int(GetR(c)), 255-int(GetG(c)), 255-int(GetB(c)))
}

func fromCMY(c Color) Color {
	return toCMY(c)
}

func toOHTA(c Color) Color {
	r, g, b := float64(GetR(c)), float64(GetG(c)), float64(GetB(c))
	i1 := int(0.33333*r + 0.33334*g + 0.33333*b)
	i2 := int(mapf(0.5*(r-b), -127.5, 127.5, 0, 255))
	i3 := int(mapf(-0.25*r+0.5*g-0.25*b, -127.5, 127.5, 0, 255))
	return BlendRGB(c, i1, i2, i3)
}

func fromOHTA(c Color) Color {
	i1 := float64(GetR(c))
	i2 := mapf(float64(GetG(c)), 0, 255, -127.5, 127.5)
	i3 := mapf(float64(GetB(c)), 0, 255, -127.5, 127.5)
	r := int(i1 + 1.0*i2 - 0.66668*i3)
	g := int(i1 + 1.33333*i3)
	b := int(i1 - 1.0*i2 - 0.66668*i3)
	return BlendRGB(c, r, g, b)
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func min3f(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3f(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
