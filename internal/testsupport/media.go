package testsupport

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

const (
	tagExifIFDPointer    = 0x8769
	tagDateTimeOriginal  = 0x9003
	tagDateTimeDigitized = 0x9004
	tiffTypeASCII        = 2
	tiffTypeLong         = 4
)

// WriteJPEG writes a minimal JPEG whose EXIF sub-IFD carries dateTimeOriginal.
// An empty value writes EXIF without the DateTimeOriginal tag.
func WriteJPEG(t testing.TB, path, dateTimeOriginal string) {
	t.Helper()
	writeBytes(t, path, JPEGBytes(dateTimeOriginal))
}

// WriteJPEGWithoutEXIF writes a JPEG that has no APP1 segment at all.
func WriteJPEGWithoutEXIF(t testing.TB, path string) {
	t.Helper()
	writeBytes(t, path, []byte{0xFF, 0xD8, 0xFF, 0xD9})
}

// JPEGBytes builds the bytes written by WriteJPEG.
func JPEGBytes(dateTimeOriginal string) []byte {
	tag := uint16(tagDateTimeOriginal)
	value := dateTimeOriginal
	if value == "" {
		tag = tagDateTimeDigitized
		value = "2001:01:01 00:00:00"
	}
	tiff := exifTIFF(tag, value)

	var app1 bytes.Buffer
	app1.WriteString("Exif\x00\x00")
	app1.Write(tiff)

	var out bytes.Buffer
	out.Write([]byte{0xFF, 0xD8, 0xFF, 0xE1})
	_ = binary.Write(&out, binary.BigEndian, uint16(app1.Len()+2))
	out.Write(app1.Bytes())
	out.Write([]byte{0xFF, 0xD9})
	return out.Bytes()
}

// exifTIFF lays out a big-endian TIFF block: IFD0 holds only the Exif
// pointer, and the Exif IFD holds a single ASCII tag.
func exifTIFF(tag uint16, value string) []byte {
	const (
		ifd0Offset = 8
		exifOffset = ifd0Offset + 2 + 12 + 4
		dataOffset = exifOffset + 2 + 12 + 4
	)
	ascii := append([]byte(value), 0)

	var b bytes.Buffer
	b.WriteString("MM")
	put16(&b, 42)
	put32(&b, ifd0Offset)

	put16(&b, 1)
	put16(&b, tagExifIFDPointer)
	put16(&b, tiffTypeLong)
	put32(&b, 1)
	put32(&b, exifOffset)
	put32(&b, 0)

	put16(&b, 1)
	put16(&b, tag)
	put16(&b, tiffTypeASCII)
	put32(&b, uint32(len(ascii)))
	put32(&b, dataOffset)
	put32(&b, 0)

	b.Write(ascii)
	return b.Bytes()
}

// MOVOptions controls the QuickTime fixture layout.
type MOVOptions struct {
	// CreationDate is stored under com.apple.quicktime.creationdate. Empty
	// omits the key (the make key is still written).
	CreationDate string
	// MovieCreationTime is the mvhd creation time in seconds since 1904.
	MovieCreationTime uint32
	// Handlers adds one trak per entry with the given hdlr handler type.
	Handlers []string
}

// WriteMOV writes a QuickTime file carrying creationDate in its moov/meta
// keys and ilst boxes, with a single video track.
func WriteMOV(t testing.TB, path, creationDate string) {
	t.Helper()
	writeBytes(t, path, MOVBytes(MOVOptions{CreationDate: creationDate, Handlers: []string{"vide"}}))
}

// MOVBytes builds a QuickTime container from opts.
func MOVBytes(opts MOVOptions) []byte {
	keys := []string{"com.apple.quicktime.make"}
	values := []string{"Apple"}
	if opts.CreationDate != "" {
		keys = append(keys, "com.apple.quicktime.creationdate")
		values = append(values, opts.CreationDate)
	}

	var moov bytes.Buffer
	moov.Write(mvhdBox(opts.MovieCreationTime))
	for i, handler := range opts.Handlers {
		moov.Write(trakBox(uint32(i+1), handler))
	}
	moov.Write(metaBox(keys, values))

	var out bytes.Buffer
	out.Write(box("ftyp", concat([]byte("qt  "), u32(0), []byte("qt  "))))
	out.Write(box("moov", moov.Bytes()))
	return out.Bytes()
}

func mvhdBox(creation uint32) []byte {
	var p bytes.Buffer
	put32(&p, 0)
	put32(&p, creation)
	put32(&p, creation)
	put32(&p, 600)
	put32(&p, 0)
	put32(&p, 0x00010000)
	put16(&p, 0x0100)
	put16(&p, 0)
	p.Write(make([]byte, 8))
	p.Write(identityMatrix())
	p.Write(make([]byte, 24))
	put32(&p, 2)
	return box("mvhd", p.Bytes())
}

func trakBox(trackID uint32, handler string) []byte {
	var tkhd bytes.Buffer
	put32(&tkhd, 0x0000000F)
	put32(&tkhd, 0)
	put32(&tkhd, 0)
	put32(&tkhd, trackID)
	put32(&tkhd, 0)
	put32(&tkhd, 0)
	tkhd.Write(make([]byte, 8))
	put16(&tkhd, 0)
	put16(&tkhd, 0)
	put16(&tkhd, 0)
	put16(&tkhd, 0)
	tkhd.Write(identityMatrix())
	put32(&tkhd, 0)
	put32(&tkhd, 0)

	var hdlr bytes.Buffer
	put32(&hdlr, 0)
	put32(&hdlr, 0)
	hdlr.WriteString(fourCC(handler))
	hdlr.Write(make([]byte, 12))
	hdlr.WriteString("Core Media\x00")

	mdia := box("mdia", box("hdlr", hdlr.Bytes()))
	return box("trak", concat(box("tkhd", tkhd.Bytes()), mdia))
}

// metaBox uses the QuickTime layout: no version/flags before the children.
func metaBox(keys, values []string) []byte {
	var hdlr bytes.Buffer
	put32(&hdlr, 0)
	put32(&hdlr, 0)
	hdlr.WriteString("mdta")
	hdlr.Write(make([]byte, 12))
	hdlr.WriteByte(0)

	var k bytes.Buffer
	put32(&k, 0)
	put32(&k, uint32(len(keys)))
	for _, key := range keys {
		put32(&k, uint32(8+len(key)))
		k.WriteString("mdta")
		k.WriteString(key)
	}

	var ilst bytes.Buffer
	for i, value := range values {
		var data bytes.Buffer
		put32(&data, 1)
		put32(&data, 0)
		data.WriteString(value)
		ilst.Write(boxRaw(u32(uint32(i+1)), box("data", data.Bytes())))
	}

	return box("meta", concat(box("hdlr", hdlr.Bytes()), box("keys", k.Bytes()), box("ilst", ilst.Bytes())))
}

func identityMatrix() []byte {
	var m bytes.Buffer
	for _, v := range []uint32{0x00010000, 0, 0, 0, 0x00010000, 0, 0, 0, 0x40000000} {
		put32(&m, v)
	}
	return m.Bytes()
}

func box(typ string, payload []byte) []byte {
	return boxRaw([]byte(fourCC(typ)), payload)
}

func boxRaw(typ []byte, payload []byte) []byte {
	return concat(u32(uint32(8+len(payload))), typ, payload)
}

func fourCC(s string) string {
	for len(s) < 4 {
		s += " "
	}
	return s[:4]
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func u32(v uint32) []byte {
	return binary.BigEndian.AppendUint32(nil, v)
}

func put16(b *bytes.Buffer, v uint16) {
	_ = binary.Write(b, binary.BigEndian, v)
}

func put32(b *bytes.Buffer, v uint32) {
	_ = binary.Write(b, binary.BigEndian, v)
}

func writeBytes(t testing.TB, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
