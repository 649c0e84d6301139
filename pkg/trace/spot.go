package trace

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/df07/go-optical-raytracer/pkg/core"
)

// Spot is the statistics of one cluster of rays sharing a path key:
// typically the rays of one source bundle after taking the same sequence
// of interactions.
type Spot struct {
	Key      string
	N        int
	Centroid core.Vec3
	RMSAxes  core.Vec3 // per-axis RMS deviation from the centroid
	RMS      float64   // scalar RMS distance from the centroid
}

// SpotSizes clusters rays by path key and reduces each cluster to its
// centroid and RMS deviations. Clusters are returned sorted by key so
// independent runs report in the same order. Singleton clusters are
// included with zero deviations; aggregate reductions skip them.
func SpotSizes(rays []*core.Ray) []Spot {
	clusters := make(map[string][]*core.Ray)
	for _, r := range rays {
		clusters[r.PathKey] = append(clusters[r.PathKey], r)
	}

	keys := make([]string, 0, len(clusters))
	for key := range clusters {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	spots := make([]Spot, 0, len(keys))
	for _, key := range keys {
		members := clusters[key]
		xs := make([]float64, len(members))
		ys := make([]float64, len(members))
		zs := make([]float64, len(members))
		for i, r := range members {
			xs[i] = r.Position.X
			ys[i] = r.Position.Y
			zs[i] = r.Position.Z
		}

		centroid := core.NewVec3(stat.Mean(xs, nil), stat.Mean(ys, nil), stat.Mean(zs, nil))

		// Population second moments about the centroid
		mx := stat.MomentAbout(2, xs, centroid.X, nil)
		my := stat.MomentAbout(2, ys, centroid.Y, nil)
		mz := stat.MomentAbout(2, zs, centroid.Z, nil)

		spots = append(spots, Spot{
			Key:      key,
			N:        len(members),
			Centroid: centroid,
			RMSAxes:  core.NewVec3(math.Sqrt(mx), math.Sqrt(my), math.Sqrt(mz)),
			RMS:      math.Sqrt(mx + my + mz),
		})
	}
	return spots
}

// MeanSpot averages the per-axis RMS deviations over all clusters with at
// least two rays. Singleton clusters carry no size information and are
// excluded. Reports the average and how many clusters contributed.
func MeanSpot(spots []Spot) (core.Vec3, int) {
	var sum core.Vec3
	n := 0
	for _, s := range spots {
		if s.N < 2 {
			continue
		}
		sum = sum.Add(s.RMSAxes)
		n++
	}
	if n == 0 {
		return core.Vec3{}, 0
	}
	return sum.Multiply(1 / float64(n)), n
}
