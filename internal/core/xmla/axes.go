package xmla

import (
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Member is a member of an axis tuple in a multidimensional result.
type Member struct {
	UniqueName      string
	Caption         string
	LevelUniqueName string
	LevelNumber     int
	DisplayInfo     int64
	// DimensionName is the hierarchy the member was returned under. It
	// disambiguates shared dimensions.
	DimensionName string
	// LevelTrueName is LevelUniqueName with its dimension part replaced by
	// DimensionName.
	LevelTrueName string
}

// Tuple is an ordered list of members.
type Tuple []Member

// Axis is one axis of a multidimensional result.
type Axis struct {
	Name   string
	Tuples []Tuple
}

type rawAxis struct {
	Name   string     `xml:"name,attr"`
	Tuples []rawTuple `xml:"Tuples>Tuple"`
}

type rawTuple struct {
	Members []rawMember `xml:"Member"`
}

type rawMember struct {
	Hierarchy   string `xml:"Hierarchy,attr"`
	UName       string `xml:"UName"`
	Caption     string `xml:"Caption"`
	LName       string `xml:"LName"`
	LNum        int    `xml:"LNum"`
	DisplayInfo int64  `xml:"DisplayInfo"`
}

var firstSegment = regexp.MustCompile(`\[[^\]]+\]`)

// ParseAxes reads the Axis elements of a multidimensional result.
func ParseAxes(r io.Reader) ([]Axis, error) {
	dec := xml.NewDecoder(r)
	axes := []Axis{}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "Axis" {
			continue
		}

		var raw rawAxis
		if err := dec.DecodeElement(&raw, &start); err != nil {
			return nil, fmt.Errorf("%w: axis: %v", ErrMalformedDocument, err)
		}
		axes = append(axes, convertAxis(raw))
	}

	return axes, nil
}

func convertAxis(raw rawAxis) Axis {
	axis := Axis{Name: raw.Name, Tuples: make([]Tuple, 0, len(raw.Tuples))}
	for _, rt := range raw.Tuples {
		tuple := make(Tuple, 0, len(rt.Members))
		for _, rm := range rt.Members {
			tuple = append(tuple, Member{
				UniqueName:      rm.UName,
				Caption:         rm.Caption,
				LevelUniqueName: rm.LName,
				LevelNumber:     rm.LNum,
				DisplayInfo:     rm.DisplayInfo,
				DimensionName:   rm.Hierarchy,
				LevelTrueName:   levelTrueName(rm.LName, rm.Hierarchy),
			})
		}
		axis.Tuples = append(axis.Tuples, tuple)
	}
	return axis
}

// levelTrueName replaces the first bracketed segment of a level unique name
// with the bracketed dimension name.
func levelTrueName(level, dimension string) string {
	if dimension == "" {
		return level
	}
	replacement := "[" + strings.TrimSuffix(strings.TrimPrefix(dimension, "["), "]") + "]"

	replaced := false
	return firstSegment.ReplaceAllStringFunc(level, func(seg string) string {
		if replaced {
			return seg
		}
		replaced = true
		return replacement
	})
}
