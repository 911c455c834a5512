// Package ppm writes a decoded raster to the binary PPM (P6) format
// described in spec.md §6, the external output collaborator of the jpeg
// package. The writer mirrors the teacher's SaveRawPicture/serialize
// pattern in jrm-1535/jpeg (jpeg.go): build the header with a
// bufio.Writer, then stream the raw pixel bytes in one Write call.
package ppm

import (
    "bufio"
    "fmt"
    "io"

    "github.com/pkg/errors"

    "github.com/jrm-1535/kpeg/internal/kpeglog"
    "github.com/jrm-1535/kpeg/jpeg"
)

// Write encodes img as a binary PPM (P6) file to w: header
// "P6\n<W> <H>\n255\n" followed by W*H*3 raw RGB bytes, row-major, no
// padding, per spec.md §6.
func Write(w io.Writer, img *jpeg.Raster) error {
    if len(img.Pix) != img.Width*img.Height*3 {
        return errors.New("ppm: raster pixel buffer size does not match its dimensions")
    }

    bw := bufio.NewWriter(w)
    if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", img.Width, img.Height); err != nil {
        return errors.Wrap(err, "ppm: writing header")
    }
    if _, err := bw.Write(img.Pix); err != nil {
        return errors.Wrap(err, "ppm: writing pixel data")
    }
    if err := bw.Flush(); err != nil {
        return errors.Wrap(err, "ppm: flushing output")
    }
    kpeglog.Logger().Printf("ppm: wrote %dx%d image", img.Width, img.Height)
    return nil
}
