package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/poiesic/resound/core"
)

// Key prefixes for different data types
const (
	recordingPrefix     = "recrec"
	recordingDatePrefix = "recdat"
	transcriptPrefix    = "trsrec"
	entityPrefix        = "entrec"
	entityNamePrefix    = "entnam"
	mentionPrefix       = "menrec"
	mentionEntityPrefix = "menent"
	mentionRecPrefix    = "menrcd"
	mentionIDSeq        = "menrecseq"
	memoryPrefix        = "memrec"
	momentPrefix        = "momrec"
)

// makeRecordingKey generates a key for a recording by ID.
func makeRecordingKey(id string) []byte {
	return []byte(fmt.Sprintf("%s:%s", recordingPrefix, id))
}

// makeRecordingDateKey generates a composite key for the insertion-time index.
// Format: prefix:timestamp:id
func makeRecordingDateKey(insertedAt time.Time, id string) []byte {
	prefix := recordingDatePrefix + ":"
	buf := make([]byte, len(prefix)+8+len(id))
	offset := copy(buf, []byte(prefix))
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(insertedAt.UnixMicro()))
	offset += 8
	copy(buf[offset:], []byte(id))
	return buf
}

// makeTranscriptKey generates a key for a recording's transcript.
func makeTranscriptKey(recordingID string) []byte {
	return []byte(fmt.Sprintf("%s:%s", transcriptPrefix, recordingID))
}

// makeEntityKey generates a key for an entity by ID.
func makeEntityKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", entityPrefix, id))
}

// makeEntityNameKey generates a key for entity lookup by exact name.
// The name is stored byte-for-byte: case and whitespace are significant.
func makeEntityNameKey(name string) []byte {
	prefix := entityNamePrefix + ":"
	buf := make([]byte, len(prefix)+len(name))
	offset := copy(buf, []byte(prefix))
	copy(buf[offset:], []byte(name))
	return buf
}

// makeMentionKey generates a key for a mention by ID.
func makeMentionKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", mentionPrefix, id))
}

// makeMentionEntityKey generates a composite key for the entity index.
// Format: prefix:entityID:mentionID
func makeMentionEntityKey(entityID, mentionID core.ID) []byte {
	prefix := mentionEntityPrefix + ":"
	buf := make([]byte, len(prefix)+16)
	offset := copy(buf, []byte(prefix))
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(entityID))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(mentionID))
	return buf
}

// makePartialMentionEntityKey generates a partial key for per-entity scans.
// Format: prefix:entityID
func makePartialMentionEntityKey(entityID core.ID) []byte {
	prefix := mentionEntityPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, []byte(prefix))
	binary.BigEndian.PutUint64(buf[offset:], uint64(entityID))
	return buf
}

// makeMentionRecordingKey generates a composite key for the recording index.
// Format: prefix:recordingID:mentionID
func makeMentionRecordingKey(recordingID string, mentionID core.ID) []byte {
	prefix := mentionRecPrefix + ":" + recordingID + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, []byte(prefix))
	binary.BigEndian.PutUint64(buf[offset:], uint64(mentionID))
	return buf
}

// makePartialMentionRecordingKey generates a partial key for per-recording scans.
func makePartialMentionRecordingKey(recordingID string) []byte {
	return []byte(mentionRecPrefix + ":" + recordingID + ":")
}

// makeMemoryKey generates a key for a recording's memory.
func makeMemoryKey(recordingID string) []byte {
	return []byte(fmt.Sprintf("%s:%s", memoryPrefix, recordingID))
}

// makeMomentKey generates a composite key for a moment.
// Format: prefix:recordingID:seq
func makeMomentKey(recordingID string, seq int) []byte {
	prefix := momentPrefix + ":" + recordingID + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, []byte(prefix))
	// Write in BigEndian order so moments iterate in sequence order
	binary.BigEndian.PutUint64(buf[offset:], uint64(seq))
	return buf
}

// makePartialMomentKey generates a partial key for a recording's moments.
func makePartialMomentKey(recordingID string) []byte {
	return []byte(momentPrefix + ":" + recordingID + ":")
}
