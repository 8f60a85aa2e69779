package colormap

// bitGet returns the idx-th bit of val.
func bitGet(val, idx int) int {
	return (val >> idx) & 1
}

// CreatePascalColormap creates the label colormap used in the PASCAL VOC
// segmentation benchmark.
//
// Each channel is assembled from the index bits, most significant position first:
// bits 0, 1 and 2 of the working index go to R, G and B at position 7, then the
// working index is shifted right by 3 and the next three bits fill position 6, and
// so on down to position 0. Index 0 is black; index 255 is the VOC void color
// (224, 224, 192).
//
// Returns:
// - A Colormap with 256 rows.
//
// @example
//
//	cmap := colormap.CreatePascalColormap()
//	fmt.Println(cmap[1]) // [128 0 0]
func CreatePascalColormap() Colormap {
	n := datasetMaxEntries[DatasetPascal]
	out := make(Colormap, n)

	for i := 0; i < n; i++ {
		var channels [3]int
		ind := i
		for shift := 7; shift >= 0; shift-- {
			for channel := 0; channel < 3; channel++ {
				channels[channel] |= bitGet(ind, channel) << shift
			}
			ind >>= 3
		}
		out[i] = RGB{uint8(channels[0]), uint8(channels[1]), uint8(channels[2])}
	}

	return out
}
