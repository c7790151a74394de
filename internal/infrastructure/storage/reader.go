package storage

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
)

var ErrBadSnapshot = errors.New("bad snapshot")

// maxCells caps what a header may claim before we allocate.
const maxCells = 1 << 20

func (svc *SnapshotService) Load(path string) (*Snapshot, error) {
	return LoadFile(path)
}

// LoadFile reads a snapshot from disk.
func LoadFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(bufio.NewReader(f))
}

// Read decodes an SGGR v1 snapshot.
func Read(r io.Reader) (*Snapshot, error) {
	// 1. Header
	var header FileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("%w: invalid magic", ErrBadSnapshot)
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("%w: unsupported version %d (expected %d)", ErrBadSnapshot, header.Version, Version1)
	}
	if header.Width < 0 || header.Height < 0 || int64(header.Width)*int64(header.Height) > maxCells {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrBadSnapshot, header.Width, header.Height)
	}

	mapID := make([]byte, header.MapIDLen)
	if _, err := io.ReadFull(r, mapID); err != nil {
		return nil, fmt.Errorf("failed to read map id: %w", err)
	}

	s := &Snapshot{
		MapID:     domain.MapID(mapID),
		Timestamp: header.Timestamp,
		Cells:     make([][]domain.TerrainCode, header.Height),
	}

	// 2. Cells
	row := make([]byte, header.Width)
	for r2 := range s.Cells {
		if _, err := io.ReadFull(r, row); err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", r2, err)
		}
		cells := make([]domain.TerrainCode, header.Width)
		for c, b := range row {
			if b > byte(domain.TerrainPortal) {
				return nil, fmt.Errorf("%w: terrain code %d at (%d,%d)", ErrBadSnapshot, b, c, r2)
			}
			cells[c] = domain.TerrainCode(b)
		}
		s.Cells[r2] = cells
	}

	// 3. Structures
	s.Structures = make([]domain.Structure, 0, header.StructureCount)
	for i := 0; i < int(header.StructureCount); i++ {
		var sh StructureHeader
		if err := binary.Read(r, binary.LittleEndian, &sh); err != nil {
			return nil, fmt.Errorf("failed to read structure %d: %w", i, err)
		}
		id := make([]byte, sh.IDLen)
		if _, err := io.ReadFull(r, id); err != nil {
			return nil, fmt.Errorf("failed to read structure %d id: %w", i, err)
		}
		s.Structures = append(s.Structures, domain.Structure{
			ID:        string(id),
			Kind:      "house",
			CreatedAt: sh.CreatedAt,
			Footprint: domain.Footprint{
				Anchor:       domain.GridPos{Col: int(sh.AnchorCol), Row: int(sh.AnchorRow)},
				Width:        int(sh.Width),
				Height:       int(sh.Height),
				PortalOffset: domain.GridPos{Col: int(sh.PortalCol), Row: int(sh.PortalRow)},
			},
		})
	}

	return s, nil
}

// Grid builds a live grid from the snapshot.
func (s *Snapshot) Grid() (*domain.Grid, error) {
	return domain.NewGrid(s.Cells)
}
