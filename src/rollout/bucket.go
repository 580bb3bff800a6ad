// Package rollout holds the pure gate functions used to evaluate a flag for a
// subject: hash bucketing, variant assignment, audience and time window checks.
package rollout

import "gitlab.com/devpro_studio/FlagGate/src/model/dto"

const (
	offset32 = 2166136261
	prime32  = 16777619

	variantSalt = "variant"
)

// Bucket maps (subjectID, flagID) to a stable value in [0..99].
func Bucket(subjectID string, flagID string) int {
	return int(hash32(subjectID, flagID, "") % 100)
}

// Hit reports whether the subject falls inside a rollout of percent.
// percent <= 0 never hits, percent >= 100 always does.
func Hit(subjectID string, flagID string, percent int) bool {
	if percent <= 0 {
		return false
	}
	if percent >= 100 {
		return true
	}
	return Bucket(subjectID, flagID) < percent
}

// AssignVariant picks the experiment arm. It hashes with its own salt so the
// arm is independent of the rollout bucket.
func AssignVariant(subjectID string, flagID string) dto.Variant {
	if hash32(subjectID, flagID, variantSalt)%2 == 0 {
		return dto.VariantA
	}
	return dto.VariantB
}

// hash32 is FNV-1a over subjectID, flagID and salt followed by the murmur3
// finalizer. The finalizer matters: raw FNV-1a keeps the low bit equal to the
// input byte parity, which would tie bucket%2 to the variant.
func hash32(subjectID string, flagID string, salt string) uint32 {
	var h uint32 = offset32
	for i := 0; i < len(subjectID); i++ {
		h ^= uint32(subjectID[i])
		h *= prime32
	}
	for i := 0; i < len(flagID); i++ {
		h ^= uint32(flagID[i])
		h *= prime32
	}
	for i := 0; i < len(salt); i++ {
		h ^= uint32(salt[i])
		h *= prime32
	}

	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}
