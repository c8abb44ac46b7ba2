package dinotree

/*

# dinotree: a static, axis alternating, median partition tree over boxes

This package builds a broad phase spatial index over a batch of axis aligned
boxes ("bots"). It is rebuilt from scratch whenever the set of bots changes
materially; nothing is ever inserted into or removed from a built tree.

	   o   ┆┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┃         ┆         o
	 ┈┈┈┈┈┈┆     o      o  ┃     o   ┆   o
	 ───────o──────────────┃         o┈┈┈┈┈┈┈┈┈┈┈┈┈
	               ┆    o  o   o     ┆
	       o       ┆ o     ┃┈┈┈┈┈o┈┈┈┆       o
	               ┆┈┈┈┈┈┈┈┃         o             o
	     o         o    o  ┃───────o──────────────────

- The axis alternates every level, starting from the configured axis.
- Each divider is placed at the median left edge of the bots it partitions.
- Bots that touch or cross a divider belong to that divider's node. They are
  never pushed down, so a divider is "fat": its cont range covers every bot
  it owns.
- The bots of a node are sorted by their left edge on the *next* axis, ready
  for a sweep along that axis.

## Shape

The tree is complete: a tree of height h has 2^(h-1)-1 internal nodes and
2^(h-1) leaves, and whether a node is a leaf is decided by its depth alone.
The height is chosen by ComputeHeight so that each leaf holds roughly
DefaultNumElemPerNode bots.

Nodes are produced in preorder. Given a node at preorder index i and depth d
in a tree of height h, its children are found purely by index arithmetic:

	left  = i + 1
	right = i + 1 + SubtreeNodeCount(d+1, h)

## Layout

Building never touches the caller's payloads while partitioning. It works on
a compact trace of (rect, original index) pairs, and only when the preorder
node sequence is final are the payloads copied (Build) or permuted
(BuildInPlace) into tree order. The permutation is kept as the mover:

	mover[i] = original index of the bot stored at tree position i

which is what Restore and IntoOriginal use to hand the bots back.

The final tree stores fixed size internal records and fixed size leaf records
in two arenas plus one contiguous bot slice. The arenas are sized up front
and the allocator asserts they are filled exactly.

*/
