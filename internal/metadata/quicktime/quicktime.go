// Package quicktime parses the metadata of QuickTime/ISO-BMFF containers into
// a per-track key/value view.
//
// Track 0 is the container-level track. Its fields come from the moov/meta
// keys and ilst boxes written by Apple devices (for example
// com.apple.quicktime.creationdate), plus the movie header creation time.
// One further track follows for each moov/trak box.
package quicktime

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
	"unicode/utf8"

	mp4 "github.com/abema/go-mp4"
)

const (
	// CreationDateKey is the Apple creation date metadata key.
	CreationDateKey = "com.apple.quicktime.creationdate"
	// MovieCreationTimeField holds the mvhd creation time in RFC 3339.
	MovieCreationTimeField = "movie_creation_time"
	// TrackIDField holds the tkhd track identifier.
	TrackIDField = "track_id"
	// HandlerTypeField holds the hdlr handler type (vide, soun, ...).
	HandlerTypeField = "handler_type"

	// KindGeneral labels the container-level track.
	KindGeneral = "General"

	// Seconds between 1904-01-01 and 1970-01-01.
	appleEpochOffset = 2082844800

	wellKnownUTF8 = 1
	maxItemValue  = 1 << 16
)

// ErrNotContainer reports a file that is not a readable QuickTime container.
var ErrNotContainer = errors.New("not a quicktime container")

// Track is the key/value view of one track.
type Track struct {
	Kind   string
	Fields map[string]string
}

// Lookup returns the value stored under key.
func (t Track) Lookup(key string) (string, bool) {
	value, ok := t.Fields[key]
	return value, ok
}

// Info is the parsed container metadata.
type Info struct {
	Tracks []Track
}

// General returns the container-level track.
func (i *Info) General() Track {
	if i == nil || len(i.Tracks) == 0 {
		return Track{Kind: KindGeneral, Fields: map[string]string{}}
	}
	return i.Tracks[0]
}

// Parse opens path and reads its metadata.
func Parse(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return info, nil
}

// Read parses the container from r.
func Read(r io.ReadSeeker) (*Info, error) {
	general := Track{Kind: KindGeneral, Fields: map[string]string{}}

	moov, err := mp4.ExtractBox(r, nil, mp4.BoxPath{mp4.BoxTypeMoov()})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotContainer, err)
	}
	if len(moov) == 0 {
		return nil, fmt.Errorf("%w: no moov box", ErrNotContainer)
	}

	if err := readMovieHeader(r, general.Fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotContainer, err)
	}
	if err := readKeyedMetadata(r, general.Fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotContainer, err)
	}

	info := &Info{Tracks: []Track{general}}
	// Track headers are informational; a malformed trak does not hide the
	// container-level fields.
	if tracks, err := readTracks(r); err == nil {
		info.Tracks = append(info.Tracks, tracks...)
	}
	return info, nil
}

func readMovieHeader(r io.ReadSeeker, fields map[string]string) error {
	boxes, err := mp4.ExtractBoxWithPayload(r, nil, mp4.BoxPath{mp4.BoxTypeMoov(), mp4.BoxTypeMvhd()})
	if err != nil {
		return fmt.Errorf("read mvhd: %w", err)
	}
	for _, b := range boxes {
		mvhd, ok := b.Payload.(*mp4.Mvhd)
		if !ok {
			continue
		}
		if created := mvhd.GetCreationTime(); created > 0 {
			ts := time.Unix(int64(created)-appleEpochOffset, 0).UTC()
			fields[MovieCreationTimeField] = ts.Format(time.RFC3339)
		}
		return nil
	}
	return nil
}

// readKeyedMetadata resolves the 1-based item indices in moov/meta/ilst
// against the names declared in moov/meta/keys.
func readKeyedMetadata(r io.ReadSeeker, fields map[string]string) error {
	keyBoxes, err := mp4.ExtractBoxWithPayload(r, nil, mp4.BoxPath{mp4.BoxTypeMoov(), mp4.BoxTypeMeta(), mp4.BoxTypeKeys()})
	if err != nil {
		return fmt.Errorf("read keys: %w", err)
	}
	var names []string
	for _, b := range keyBoxes {
		keys, ok := b.Payload.(*mp4.Keys)
		if !ok {
			continue
		}
		for _, entry := range keys.Entries {
			names = append(names, string(entry.KeyValue))
		}
	}
	if len(names) == 0 {
		return nil
	}

	ilsts, err := mp4.ExtractBox(r, nil, mp4.BoxPath{mp4.BoxTypeMoov(), mp4.BoxTypeMeta(), mp4.BoxTypeIlst()})
	if err != nil {
		return fmt.Errorf("read ilst: %w", err)
	}
	for _, ilst := range ilsts {
		if err := readItems(r, ilst, names, fields); err != nil {
			return err
		}
	}
	return nil
}

func readItems(r io.ReadSeeker, ilst *mp4.BoxInfo, names []string, fields map[string]string) error {
	return eachChild(r, ilst, func(item *mp4.BoxInfo) error {
		index := binary.BigEndian.Uint32(item.Type[:])
		if index == 0 || int(index) > len(names) {
			return nil
		}
		return eachChild(r, item, func(child *mp4.BoxInfo) error {
			if child.Type != mp4.StrToBoxType("data") {
				return nil
			}
			value, ok, err := readDataValue(r, child)
			if err != nil {
				return err
			}
			if ok {
				fields[names[index-1]] = value
			}
			return nil
		})
	})
}

// eachChild calls fn for every box directly inside parent.
func eachChild(r io.ReadSeeker, parent *mp4.BoxInfo, fn func(*mp4.BoxInfo) error) error {
	end := parent.Offset + parent.Size
	pos := parent.Offset + parent.HeaderSize
	for pos+8 <= end {
		if _, err := r.Seek(int64(pos), io.SeekStart); err != nil {
			return err
		}
		child, err := mp4.ReadBoxInfo(r)
		if err != nil {
			return fmt.Errorf("read box header at %d: %w", pos, err)
		}
		if child.Size < child.HeaderSize || child.Offset+child.Size > end {
			return fmt.Errorf("box %s at %d overruns its parent", child.Type, pos)
		}
		if err := fn(child); err != nil {
			return err
		}
		pos = child.Offset + child.Size
	}
	return nil
}

// readDataValue returns the UTF-8 value of a data box. Non-text items are
// reported as absent.
func readDataValue(r io.ReadSeeker, data *mp4.BoxInfo) (string, bool, error) {
	size := data.Size - data.HeaderSize
	if size < 8 || size > maxItemValue {
		return "", false, nil
	}
	if _, err := data.SeekToPayload(r); err != nil {
		return "", false, err
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", false, fmt.Errorf("read data box: %w", err)
	}
	if binary.BigEndian.Uint32(buf[:4])&0x00FFFFFF != wellKnownUTF8 {
		return "", false, nil
	}
	value := buf[8:]
	if !utf8.Valid(value) {
		return "", false, nil
	}
	return string(value), true, nil
}

func readTracks(r io.ReadSeeker) ([]Track, error) {
	boxes, err := mp4.ExtractBoxesWithPayload(r, nil, []mp4.BoxPath{
		{mp4.BoxTypeMoov(), mp4.BoxTypeTrak(), mp4.BoxTypeTkhd()},
		{mp4.BoxTypeMoov(), mp4.BoxTypeTrak(), mp4.BoxTypeMdia(), mp4.BoxTypeHdlr()},
	})
	if err != nil {
		return nil, err
	}

	var tracks []Track
	for _, b := range boxes {
		switch payload := b.Payload.(type) {
		case *mp4.Tkhd:
			tracks = append(tracks, Track{Fields: map[string]string{
				TrackIDField: strconv.FormatUint(uint64(payload.TrackID), 10),
			}})
		case *mp4.Hdlr:
			if len(tracks) == 0 {
				continue
			}
			current := &tracks[len(tracks)-1]
			handler := string(payload.HandlerType[:])
			current.Fields[HandlerTypeField] = handler
			current.Kind = trackKind(handler)
		}
	}
	return tracks, nil
}

func trackKind(handler string) string {
	switch handler {
	case "vide":
		return "Video"
	case "soun":
		return "Audio"
	case "meta", "mdta":
		return "Metadata"
	default:
		return "Other"
	}
}
