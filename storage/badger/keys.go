package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/coursechat/coursechat/core"
)

// Key prefixes for the two collections
const (
	coursePrefix = "course"
	chunkPrefix  = "chunk"
)

// makeCourseKey generates a key for a catalog entry by course ID.
func makeCourseKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", coursePrefix, id))
}

// makeChunkKey generates a composite key for a content entry.
// Format: prefix:courseID:chunkIndex, with the numeric parts written in
// BigEndian order so iteration visits chunks per course in index order.
func makeChunkKey(courseID core.ID, chunkIndex int) []byte {
	prefix := chunkPrefix + ":"
	buf := make([]byte, len(prefix)+16)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(courseID))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(chunkIndex))
	return buf
}

// makePartialChunkKey generates the per-course prefix for chunk scans.
// Format: prefix:courseID
func makePartialChunkKey(courseID core.ID) []byte {
	prefix := chunkPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(courseID))
	return buf
}
