package registry

import "github.com/cespare/xxhash/v2"

func hash(name string) uint64 {
	return xxhash.Sum64String(name)
}

func shardIndex(name string, numShards int) int {
	switch numShards {
	case 0:
		panic("number of shards cannot be 0")
	case 1:
		return 0
	default:
		return int(hash(name) % uint64(numShards))
	}
}
