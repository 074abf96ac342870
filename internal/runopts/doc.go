// Package runopts builds the command-line option vector handed to the test engine for
// one worker (a single feature) or for the whole suite.
//
// Building happens in three steps:
//   - the named option map is assembled from the resolved run configuration
//   - the plugin list is rewritten so that concurrently running workers never share a
//     report or rerun file
//   - the map is flattened into the token order the engine's option parser expects
//
// Worker file names are derived from the run's session id, a fingerprint of the
// feature and a random value drawn once per WorkerOptionSet. No locking is involved;
// uniqueness rests on the naming alone.
package runopts
