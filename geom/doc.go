// Package geom provides the value types used for device-independent
// measurement: points, sizes, rectangles, edge thicknesses and affine
// transforms.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Double-valued types (PointD, SizeD, RectD) are measured in device
// independent pixels (DIPs, 1/96 inch) unless stated otherwise. Integer
// types (PointI, SizeI, RectI) usually hold physical pixels.
//
// # Value Semantics
//
// All types are plain values. Methods never mutate their receiver unless
// they have a pointer receiver and say so; equality is exact component-wise
// comparison with ==.
//
// # Pixel Conversion
//
// pixels = dips * scaleFactor. Conversions between double and integer
// types always name their rounding rule (Truncate, Ceiling, Round) because
// the results differ at half-pixel boundaries.
package geom
