package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bgpconverge/bgpconverge/asgraph"
	"github.com/bgpconverge/bgpconverge/caida"
	"github.com/bgpconverge/bgpconverge/relationship"
	"github.com/bgpconverge/bgpconverge/synthetic"
)

func newInferCmd() *cobra.Command {
	var (
		caidaPath   string
		synthSeed   int64
		synthTier1  int
		synthRegion int
		synthStub   int
		origins     []int64
		prepends    []string
		peerLocks   []string
	)

	cmd := &cobra.Command{
		Use:   "infer",
		Short: "Run one announcement over a graph and print the resulting best paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(origins) == 0 {
				return fmt.Errorf("at least one --origin is required")
			}

			var g *asgraph.Graph
			var err error
			if caidaPath != "" {
				logrus.WithField("path", caidaPath).Info("loading CAIDA AS-relationship file")
				g, err = caida.ReadASRelGraph(caidaPath)
			} else {
				logrus.WithFields(logrus.Fields{
					"tier1": synthTier1, "regional": synthRegion, "stub": synthStub,
				}).Info("generating synthetic topology")
				g, err = synthetic.Generate(
					synthetic.WithSeed(synthSeed),
					synthetic.WithTierSizes(synthTier1, synthRegion, synthStub),
				)
			}
			if err != nil {
				return fmt.Errorf("load graph: %w", err)
			}

			if err := applyPeerLocks(g, peerLocks); err != nil {
				return err
			}

			srcASNs := make([]asgraph.ASN, len(origins))
			for i, o := range origins {
				srcASNs[i] = asgraph.ASN(o)
			}
			announce := asgraph.AnycastFromSet(g, srcASNs)
			if err := applyPrepends(announce, prepends); err != nil {
				return err
			}

			if err := g.InferPaths(announce); err != nil {
				return fmt.Errorf("infer paths: %w", err)
			}

			printResults(cmd, g)
			return nil
		},
	}

	cmd.Flags().StringVar(&caidaPath, "caida", "", "path to a bzip2-compressed CAIDA AS-relationship file")
	cmd.Flags().Int64Var(&synthSeed, "synthetic-seed", 1, "seed for the synthetic topology generator (used when --caida is unset)")
	cmd.Flags().IntVar(&synthTier1, "synthetic-tier1", 12, "tier-1 AS count for the synthetic topology")
	cmd.Flags().IntVar(&synthRegion, "synthetic-regional", 200, "regional AS count for the synthetic topology")
	cmd.Flags().IntVar(&synthStub, "synthetic-stub", 2000, "stub AS count for the synthetic topology")
	cmd.Flags().Int64SliceVar(&origins, "origin", nil, "AS announcing the prefix (repeatable)")
	cmd.Flags().StringArrayVar(&prepends, "prepend", nil, "override the announced path as origin:neighbor=asn,asn,... (repeatable)")
	cmd.Flags().StringArrayVar(&peerLocks, "peer-lock", nil, "restrict asn to routes originated by origin, as asn=origin (repeatable)")

	return cmd
}

func applyPeerLocks(g *asgraph.Graph, specs []string) error {
	for _, spec := range specs {
		parts := strings.SplitN(spec, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid --peer-lock %q, expected asn=origin", spec)
		}
		asn, err := parseASN(parts[0])
		if err != nil {
			return fmt.Errorf("invalid --peer-lock asn %q: %w", parts[0], err)
		}
		origin, err := parseASN(parts[1])
		if err != nil {
			return fmt.Errorf("invalid --peer-lock origin %q: %w", parts[1], err)
		}
		if err := g.SetImportFilter(asn, peerLockFilter, origin); err != nil {
			return fmt.Errorf("set peer-lock filter on AS%d: %w", asn, err)
		}
	}
	return nil
}

func peerLockFilter(_ asgraph.ASN, candidates []asgraph.ASPath, userData interface{}) []asgraph.ASPath {
	origin := userData.(asgraph.ASN)
	out := make([]asgraph.ASPath, 0, len(candidates))
	for _, p := range candidates {
		if len(p) > 0 && p[len(p)-1] == origin {
			out = append(out, p)
		}
	}
	return out
}

func applyPrepends(announce *asgraph.Announcement, specs []string) error {
	for _, spec := range specs {
		originNeighbor, rawPath, found := strings.Cut(spec, "=")
		if !found {
			return fmt.Errorf("invalid --prepend %q, expected origin:neighbor=asn,asn,...", spec)
		}
		origin, neighbor, found := strings.Cut(originNeighbor, ":")
		if !found {
			return fmt.Errorf("invalid --prepend %q, expected origin:neighbor=asn,asn,...", spec)
		}

		originASN, err := parseASN(origin)
		if err != nil {
			return fmt.Errorf("invalid --prepend origin %q: %w", origin, err)
		}
		neighborASN, err := parseASN(neighbor)
		if err != nil {
			return fmt.Errorf("invalid --prepend neighbor %q: %w", neighbor, err)
		}

		n2p, ok := announce.SourceToNeighborToPath[originASN]
		if !ok {
			return fmt.Errorf("--prepend origin AS%d is not among --origin values", originASN)
		}
		if _, ok := n2p[neighborASN]; !ok {
			return fmt.Errorf("--prepend AS%d is not a neighbor of origin AS%d", neighborASN, originASN)
		}

		path, err := parseASPath(rawPath)
		if err != nil {
			return fmt.Errorf("invalid --prepend path %q: %w", rawPath, err)
		}
		n2p[neighborASN] = path
	}
	return nil
}

func parseASN(s string) (asgraph.ASN, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return asgraph.ASN(v), err
}

func parseASPath(s string) (asgraph.ASPath, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return asgraph.ASPath{}, nil
	}
	hops := strings.Split(s, ",")
	path := make(asgraph.ASPath, len(hops))
	for i, hop := range hops {
		asn, err := parseASN(hop)
		if err != nil {
			return nil, err
		}
		path[i] = asn
	}
	return path, nil
}

func printResults(cmd *cobra.Command, g *asgraph.Graph) {
	out := cmd.OutOrStdout()
	for _, asn := range g.ASNs() {
		pref := g.PathPref(asn)
		if pref == relationship.UNKNOWN {
			continue
		}
		pathLen, _ := g.PathLen(asn)
		fmt.Fprintf(out, "AS%d\tpref=%s\tlen=%d\n", asn, pref, pathLen)
		for _, p := range g.BestPaths(asn) {
			fmt.Fprintf(out, "\t%v\n", []asgraph.ASN(p))
		}
	}
}
