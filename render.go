// seehuhn.de/go/sdfcanvas - signed-distance shape rendering for terminals
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.
package sdfcanvas

//go:generate go run ./testcases/genpdf

import (
	"image"

	"seehuhn.de/go/sdfcanvas/encode"
)

// Render updates the pixel buffer, if the canvas changed since the last
// successful pass.
func (c *Canvas) Render() error {
	if !c.dirty {
		return nil
	}
	err := c.r.Rasterise(c.pix, c.width, c.height, c.background, c.shapes)
	if err != nil {
		return err
	}
	c.dirty = false
	return nil
}

// Encode renders the canvas and converts the region bounds of the pixel
// buffer into the given format.  Use [encode.Full] to encode the whole
// canvas.
func (c *Canvas) Encode(bounds image.Rectangle, depth encode.ColorDepth, format encode.Format) ([]byte, error) {
	if err := c.Render(); err != nil {
		return nil, err
	}
	return c.enc.Encode(bounds, depth, c.pix, 4*c.width, format)
}

// Pix returns the pixel buffer as of the last call to [Canvas.Render].
// The buffer holds 4 bytes (R, G, B, A) per pixel in row-major order.
// It is owned by the canvas and overwritten by later passes.
func (c *Canvas) Pix() []byte {
	return c.pix
}

// Image renders the canvas and returns an image sharing the pixel buffer
// of the canvas.
func (c *Canvas) Image() (*image.NRGBA, error) {
	if err := c.Render(); err != nil {
		return nil, err
	}
	return &image.NRGBA{
		Pix:    c.pix,
		Stride: 4 * c.width,
		Rect:   image.Rect(0, 0, c.width, c.height),
	}, nil
}
