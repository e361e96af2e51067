package caida

import (
	"bufio"
	"compress/bzip2"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/bgpconverge/bgpconverge/asgraph"
	"github.com/bgpconverge/bgpconverge/relationship"
)

// ReadASRelGraph loads a bzip2-compressed CAIDA AS-relationship file and
// returns the resulting Graph. Comment lines (starting with '#') are
// skipped; every other line is parsed as "<asn>|<asn>|<rel>" and fed to
// AddPeering.
//
// compress/bzip2 is the standard library's bzip2 decoder; no third-party
// bzip2 decoder exists in this module's dependency set (see DESIGN.md).
func ReadASRelGraph(path string) (*asgraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g := asgraph.NewGraph()
	scanner := bufio.NewScanner(bzip2.NewReader(f))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lines, peerings := 0, 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		lines++
		if line[0] == '#' {
			continue
		}

		source, sink, rel, err := parseRelationshipLine(line)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Reason: err.Error()}
		}
		if err := g.AddPeering(source, sink, rel); err != nil {
			return nil, &ParseError{Line: lineNo, Reason: err.Error()}
		}
		peerings++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"path":     path,
		"lines":    lines,
		"peerings": peerings,
	}).Info("read CAIDA AS-relationship file")

	return g, nil
}

func parseRelationshipLine(line string) (asgraph.ASN, asgraph.ASN, relationship.Relationship, error) {
	fields := strings.Split(strings.TrimSpace(line), "|")
	if len(fields) < 3 {
		return 0, 0, 0, errUnexpectedFieldCount(len(fields))
	}

	source, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, 0, 0, err
	}
	sink, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return 0, 0, 0, err
	}
	rawRel, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, 0, err
	}

	var rel relationship.Relationship
	switch rawRel {
	case -1:
		rel = relationship.P2C
	case 0:
		rel = relationship.P2P
	case 1:
		rel = relationship.C2P
	default:
		return 0, 0, 0, errUnsupportedRelationship(rawRel)
	}

	return asgraph.ASN(source), asgraph.ASN(sink), rel, nil
}
