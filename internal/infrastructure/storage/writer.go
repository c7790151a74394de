package storage

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
)

const (
	MagicHeader string = `SGGR`
	Version1    uint32 = 1
)

// Snapshot is a saved map: its cells plus the structures placed on it.
type Snapshot struct {
	MapID      domain.MapID
	Timestamp  int64
	Cells      [][]domain.TerrainCode
	Structures []domain.Structure
}

// FileHeader is the fixed-size head of a snapshot file. binary.Write can
// write it in one go because it only holds arrays and numbers.
type FileHeader struct {
	Magic          [4]byte
	Version        uint32
	Timestamp      int64
	Width          int32
	Height         int32
	MapIDLen       uint16
	StructureCount uint16
}

// StructureHeader precedes each structure record; the ID bytes follow it.
type StructureHeader struct {
	AnchorCol int32
	AnchorRow int32
	Width     uint8
	Height    uint8
	PortalCol int8
	PortalRow int8
	IDLen     uint8
	CreatedAt int64
}

type SnapshotService struct {
	SaveDir string
}

func NewSnapshotService(dir string) (*SnapshotService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot dir: %w", err)
	}
	return &SnapshotService{SaveDir: dir}, nil
}

// Save writes s into SaveDir and returns the file path.
func (svc *SnapshotService) Save(s *Snapshot) (string, error) {
	filename := fmt.Sprintf("grid_%s_%d.sggr", s.MapID, s.Timestamp)
	path := filepath.Join(svc.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := Write(w, s); err != nil {
		return "", err
	}
	if err := w.Flush(); err != nil {
		return "", err
	}
	return path, nil
}

// Write encodes s in the SGGR v1 format.
func Write(w io.Writer, s *Snapshot) error {
	height := len(s.Cells)
	width := 0
	if height > 0 {
		width = len(s.Cells[0])
	}

	mapID := []byte(s.MapID)
	if len(mapID) > 0xFFFF {
		return fmt.Errorf("map id too long: %d", len(mapID))
	}
	if len(s.Structures) > 0xFFFF {
		return fmt.Errorf("too many structures: %d", len(s.Structures))
	}

	// 1. Header
	header := FileHeader{
		Version:        Version1,
		Timestamp:      s.Timestamp,
		Width:          int32(width),
		Height:         int32(height),
		MapIDLen:       uint16(len(mapID)),
		StructureCount: uint16(len(s.Structures)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write(mapID); err != nil {
		return err
	}

	// 2. Cells, one byte each, row-major
	row := make([]byte, width)
	for r, cells := range s.Cells {
		if len(cells) != width {
			return fmt.Errorf("row %d: %w", r, domain.ErrNonUniformGrid)
		}
		for c, code := range cells {
			row[c] = byte(code)
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}

	// 3. Structures
	for _, st := range s.Structures {
		id := []byte(st.ID)
		if len(id) > 255 {
			return fmt.Errorf("structure id too long: %d", len(id))
		}
		fp := st.Footprint
		sh := StructureHeader{
			AnchorCol: int32(fp.Anchor.Col),
			AnchorRow: int32(fp.Anchor.Row),
			Width:     uint8(fp.Width),
			Height:    uint8(fp.Height),
			PortalCol: int8(fp.PortalOffset.Col),
			PortalRow: int8(fp.PortalOffset.Row),
			IDLen:     uint8(len(id)),
			CreatedAt: st.CreatedAt,
		}
		if err := binary.Write(w, binary.LittleEndian, &sh); err != nil {
			return err
		}
		if _, err := w.Write(id); err != nil {
			return err
		}
	}

	return nil
}
