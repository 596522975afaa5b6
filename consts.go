package num

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1
	minInt64  = -1 << 63

	// wordBits is the width of one limb.
	wordBits = 32

	// decBase is the largest power of ten that fits in a limb; the decimal
	// serializer peels off decDigits digits per division by it.
	decBase   = 1000000000
	decDigits = 9

	intSize = 32 << (^uint(0) >> 63)
)
