package src

//-----------------------------------------------------------------------------
// errors
//-----------------------------------------------------------------------------

const (
	ERR_INVALID_INPUT       = statusErr(0x01) /* null handle or null required argument */
	ERR_MEMORY_ALLOCATION   = statusErr(0x02) /* underlying memory request denied */
	ERR_INDEX_OUT_OF_BOUNDS = statusErr(0x03) /* index >= current size */
	ERR_EMPTY_CONTAINER     = statusErr(0x04) /* pop/peek on zero elements */
	ERR_NOT_FOUND           = statusErr(0x05) /* search miss */
	ERR_FULL_CONTAINER      = statusErr(0x06) /* fixed-capacity contexts only */
)

//-----------------------------------------------------------------------------
// core
//-----------------------------------------------------------------------------

const (
	// memSwap switches from the stack scratch buffer to a heap buffer
	// above this size
	SWAP_STACK_BUF = 64
)

//-----------------------------------------------------------------------------
// vector
//-----------------------------------------------------------------------------

const (
	VECTOR_INITIAL_CAPACITY = 16
)

//-----------------------------------------------------------------------------
// queue
//-----------------------------------------------------------------------------

const (
	QUEUE_INITIAL_CAPACITY = 16
	QUEUE_GROWTH_FACTOR    = 2
)

//-----------------------------------------------------------------------------
// doubly list iterator direction
//-----------------------------------------------------------------------------

const (
	DL_START_HEAD = 0
	DL_START_TAIL = 1
)

// find miss sentinel

const NOT_FOUND_IDX = -1
