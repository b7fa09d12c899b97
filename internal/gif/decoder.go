package gif

import (
	"bytes"
	"io"

	"github.com/ostafen/gifdecode/internal/mmapfile"
)

// Block introducers and extension labels, adapted from the teacher's
// sExtension/sImageDescriptor/sTrailer scanner constants in
// internal/format/gif.go, renamed to spec.md §4.2's block set.
const (
	bImageDescriptor = 0x2C
	bExtension       = 0x21
	bTrailer         = 0x3B
	bPadding         = 0x00

	eGraphicControl = 0xF9
	ePlainText      = 0x01
	eApplication    = 0xFF
	eComment        = 0xFE
)

const (
	fGlobalColorTable   = 1 << 7
	fInterlace          = 1 << 6
	fLocalSortFlag      = 1 << 5
	fColorTableSizeMask = 0x07
)

// DecodeBuffer parses a complete in-memory GIF, per spec.md §4.2.
func DecodeBuffer(data []byte) (*Gif, error) {
	return Decode(bytes.NewReader(data))
}

// DecodePath memory-maps path and parses it, per spec.md §6's
// decode_path entry point. Filesystem access is delegated to
// internal/mmapfile so this package only ever sees bytes.
func DecodePath(path string) (*Gif, error) {
	f, err := mmapfile.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DecodeBuffer(f.Bytes())
}

// Decode parses a GIF container from r: signature, logical screen
// descriptor, optional global color table, then the tagged block
// stream up to the trailer. Grounded on the reference decoder's
// decode_internal block-dispatch loop and on the teacher's ScanGIF
// signature walk for the byte-cursor style.
func Decode(r io.Reader) (*Gif, error) {
	br := newByteReader(r)
	g := &Gif{}

	var sig [3]byte
	if err := br.readFull(sig[:]); err != nil {
		return nil, err
	}
	if !isASCII(sig[:]) {
		return nil, ErrBadEncoding
	}
	if !hasGIFSignature(sig[:]) {
		return nil, ErrBadSignature
	}

	var ver [3]byte
	if err := br.readFull(ver[:]); err != nil {
		return nil, err
	}
	if !isASCII(ver[:]) {
		return nil, ErrBadEncoding
	}
	g.Version = string(ver[:])

	if err := readLogicalScreenDescriptor(br, &g.LSD); err != nil {
		return nil, err
	}

	if g.LSD.GlobalColorFlag {
		tbl, err := readColorTable(br, g.LSD.GlobalColorSize)
		if err != nil {
			return nil, err
		}
		g.GlobalTable = tbl
	}

	framePending := false

	for {
		tag, err := br.ReadByte()
		if err != nil {
			// Input ended before the trailer (for example, cut off
			// mid-LZW-stream): keep the frames decoded so far, exactly
			// as if the trailer had been read here.
			tag = bTrailer
		}

		switch tag {
		case bTrailer:
			if framePending {
				// A GCE with no following image descriptor yields no
				// frame: drop the placeholder pushed speculatively at
				// eGraphicControl, per spec.md §3.
				g.Frames = g.Frames[:len(g.Frames)-1]
			}
			return g, nil

		case bPadding:
			continue

		case bExtension:
			label, err := br.ReadByte()
			if err != nil {
				return nil, ErrTruncated
			}
			switch label {
			case eGraphicControl:
				gce, err := readGraphicControlExtension(br)
				if err != nil {
					return nil, err
				}
				if framePending {
					g.Frames[len(g.Frames)-1].GCD = gce
				} else {
					g.Frames = append(g.Frames, Frame{GCD: gce})
					framePending = true
				}
			case ePlainText:
				if err := br.discard(12); err != nil {
					return nil, err
				}
				if err := skipSubBlocks(br); err != nil {
					return nil, err
				}
			case eApplication:
				if err := br.discard(11); err != nil {
					return nil, err
				}
				if err := skipSubBlocks(br); err != nil {
					return nil, err
				}
			case eComment:
				if err := skipSubBlocks(br); err != nil {
					return nil, err
				}
			default:
				if err := skipSubBlocks(br); err != nil {
					return nil, err
				}
			}

		case bImageDescriptor:
			if !framePending {
				g.Frames = append(g.Frames, Frame{})
			}
			framePending = false

			f := &g.Frames[len(g.Frames)-1]
			if err := readImageDescriptor(br, g.GlobalTable, f); err != nil {
				return nil, err
			}

		default:
			// Lenient: some encoders emit stray bytes between blocks.
			continue
		}
	}
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c < 0x20 || c > 0x7E {
			return false
		}
	}
	return true
}

func readLogicalScreenDescriptor(br *byteReader, lsd *LogicalScreenDescriptor) error {
	var buf [7]byte
	if err := br.readFull(buf[:]); err != nil {
		return err
	}
	lsd.Width = int(buf[0]) | int(buf[1])<<8
	lsd.Height = int(buf[2]) | int(buf[3])<<8

	packed := buf[4]
	lsd.GlobalColorFlag = packed&fGlobalColorTable != 0
	lsd.ColorResolution = packed & 0x70
	lsd.SortedFlag = packed&(1<<3) != 0
	lsd.GlobalColorSize = packed & fColorTableSizeMask

	lsd.BackgroundColorIndex = buf[5]
	lsd.PixelAspectRatio = buf[6]
	return nil
}

func readColorTable(br *byteReader, size byte) ([]Color, error) {
	count := 1 << (uint(size) + 1)
	raw := make([]byte, count*3)
	if err := br.readFull(raw); err != nil {
		return nil, err
	}
	table := make([]Color, count)
	for i := range table {
		table[i] = Color{Red: raw[i*3], Green: raw[i*3+1], Blue: raw[i*3+2]}
	}
	return table, nil
}

func readGraphicControlExtension(br *byteReader) (GraphicsControlExtension, error) {
	var buf [6]byte
	if err := br.readFull(buf[:]); err != nil {
		return GraphicsControlExtension{}, err
	}
	packed := buf[1]
	return GraphicsControlExtension{
		DisposalMethod:        int((packed >> 2) & 0x07),
		UserInputFlag:         packed&(1<<1) != 0,
		TransparentColorFlag:  packed&1 != 0,
		DelayTime:             uint16(buf[2]) | uint16(buf[3])<<8,
		TransparentColorIndex: buf[4],
	}, nil
}

func readImageDescriptor(br *byteReader, globalTable []Color, f *Frame) error {
	var buf [9]byte
	if err := br.readFull(buf[:]); err != nil {
		return err
	}

	f.IM.Left = int(buf[0]) | int(buf[1])<<8
	f.IM.Top = int(buf[2]) | int(buf[3])<<8
	f.IM.Width = int(buf[4]) | int(buf[5])<<8
	f.IM.Height = int(buf[6]) | int(buf[7])<<8

	packed := buf[8]
	localFlag := packed&fGlobalColorTable != 0
	f.IM.InterlaceFlag = packed&fInterlace != 0
	f.IM.SortFlag = packed&fLocalSortFlag != 0
	localSize := packed & fColorTableSizeMask

	if localFlag {
		tbl, err := readColorTable(br, localSize)
		if err != nil {
			return err
		}
		f.ColorTable = tbl
	} else {
		f.ColorTable = globalTable
	}

	minCodeSize, err := br.ReadByte()
	if err != nil {
		return ErrTruncated
	}

	next := subBlockReader(br)
	f.IndexStream = lzwDecode(minCodeSize, next, f.IM.Width*f.IM.Height)
	for next() != nil {
		// Drain any sub-blocks the LZW loop stopped short of, so the
		// container parser resumes at the next block introducer.
	}

	if f.IM.InterlaceFlag {
		f.IndexStream = deinterlace(f.IndexStream, f.IM.Width)
	}
	return nil
}

// skipSubBlocks discards a run of length-prefixed sub-blocks up to and
// including the zero-length terminator, per spec.md §4.2 step 5.
func skipSubBlocks(br *byteReader) error {
	for {
		n, err := br.ReadByte()
		if err != nil {
			return ErrTruncated
		}
		if n == 0 {
			return nil
		}
		if err := br.discard(int(n)); err != nil {
			return err
		}
	}
}

// subBlockReader returns a closure yielding one data sub-block per call,
// nil once the zero-length terminator (or truncated input) is reached.
// lzwDecode treats any nil/empty return as "no more data" rather than an
// error, so a truncated stream zero-pads instead of failing outright.
func subBlockReader(br *byteReader) func() []byte {
	done := false
	return func() []byte {
		if done {
			return nil
		}
		n, err := br.ReadByte()
		if err != nil || n == 0 {
			done = true
			return nil
		}
		buf := make([]byte, n)
		if err := br.readFull(buf); err != nil {
			done = true
			return nil
		}
		return buf
	}
}
