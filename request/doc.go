// Package request is the JSON front door of the module: it decodes maze
// requests, validates their closed enums, and dispatches them through
// grid construction and algorithm selection to a finished maze.
//
// Request format
//
// All fields beyond the first four are optional:
//
//	{
//	  "maze_type":     "Orthogonal" | "Delta" | "Sigma" | "Polar" |
//	                   "Rhombille"  | "Upsilon" | "Rhombic",
//	  "width":         positive integer,
//	  "height":        positive integer,
//	  "algorithm":     "BinaryTree" | "Sidewinder" | "AldousBroder" |
//	                   "Wilsons" | "HuntAndKill" | "RecursiveBacktracker" |
//	                   "Prims" | "Kruskals" | "GrowingTree" |
//	                   "GrowingTreeRandom" | "GrowingTreeNewest" |
//	                   "Ellers" | "RecursiveDivision" | "ReverseDelete",
//	  "start":         {"x": 0, "y": 0},          // default {0,0}
//	  "goal":          {"x": 11, "y": 11},        // default {width-1,height-1}
//	  "capture_steps": false,                     // default off
//	  "seed":          12345                      // default 0 = fixed stream
//	}
//
// Errors
//
// Malformed JSON and unknown enum values fail with ErrSerialization.
// Everything structural — dimensions, out-of-range start/goal, capture
// size limits, unsupported algorithm/tessellation pairings — surfaces the
// precise sentinel from the grid or algorithms package, so callers can
// match with errors.Is.
//
// Determinism
//
// A request without a seed (or with seed 0) replays the library's fixed
// default stream: the same request bytes always produce the same maze.
// Callers wanting variety supply their own entropy in the seed field.
package request
