// Package params parses .env-style files that supply default values for
// dirsum's CLI flags (DIRSUM_ALGORITHM, DIRSUM_MATCH, DIRSUM_EXCLUDE and
// friends).
//
// The parser intentionally supports only the simple KEY=VALUE subset of
// the format; files that need variable expansion should be loaded into
// the process environment instead, which the CLI does via godotenv.
package params
