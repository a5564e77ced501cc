// Package barcode lee códigos de barras y QR de fotogramas de cámara.
package barcode

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // decodificadores registrados para image.Decode
	_ "image/png"
	"strings"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/oned"
	"github.com/makiuchi-d/gozxing/qrcode"

	"github.com/josemfca/referencias-raf/internal/domain"
)

// Decoder prueba los lectores en orden y devuelve el primer texto leído.
type Decoder struct {
	readers []gozxing.Reader
	hints   map[gozxing.DecodeHintType]interface{}
}

// NewDecoder crea un decodificador para EAN-13/UPC, Code 128, Code 39 y QR.
func NewDecoder() *Decoder {
	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	}
	return &Decoder{
		readers: []gozxing.Reader{
			oned.NewMultiFormatUPCEANReader(hints),
			oned.NewCode128Reader(),
			oned.NewCode39Reader(),
			qrcode.NewQRCodeReader(),
		},
		hints: hints,
	}
}

// Decode lee un código de la imagen. ok es false si ningún lector encuentra nada; eso no es error.
func (d *Decoder) Decode(img image.Image) (text string, ok bool, err error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	for _, r := range d.readers {
		res, err := r.Decode(bmp, d.hints)
		if err != nil {
			continue
		}
		if s := strings.TrimSpace(res.GetText()); s != "" {
			return s, true, nil
		}
	}
	return "", false, nil
}

// DecodeFrame decodifica un fotograma PNG o JPEG y busca un código en él.
func (d *Decoder) DecodeFrame(data []byte) (string, bool, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", false, fmt.Errorf("%w: fotograma ilegible: %v", domain.ErrInvalidInput, err)
	}
	return d.Decode(img)
}
