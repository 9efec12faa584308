package core

// HardcodedCheckpoint is one entry of a compiled-in checkpoint table. The
// hash stays hex-encoded in the table; insertion goes through the same
// parse-and-conflict-check path as every other source.
type HardcodedCheckpoint struct {
	Height  uint64
	HashStr string
}

// HardcodedCheckpoints maps each network kind to its compiled-in checkpoint
// table, in ascending height order. Non-production networks ship without
// default checkpoints.
var HardcodedCheckpoints = map[NetworkKind][]HardcodedCheckpoint{
	Mainnet: {
		{0, "c106ebad646e2dc0f9ab96741b2c320d3435b43d6f6f9660b1f318f33a764ad2"},
		{5, "40bccdd5ce631f0cc959bb8bf7d3af00c6bae7d93c1a2a9cdcf0d73fb771b8a0"},
		{10, "45f7a39a86145d97f41dbbbc53b45dc40e7f71cd82a631c8d7d28a7e29d6a94c"},
		{14, "3cf3d8e066bee9086e4ae8b8e7e9daa214565fc6819ee458c44fdabc497091bc"},
		{18, "8b064a076d36532d35eae595798021973068d61b893e5ec6f2b07bccd8c54b32"},
		{22, "7b12fac40ea6a4250ec5d6b6f926d5b75b559b6e6d5f0f81323d6095ebae077b"},
		{26, "9033f816ad46136e390e6fbafee962ff616cd66445ed62b86447b20feb5b74ed"},
		{30, "7a22d01f518280d55db3b6276775794b447c52d47ce7170ca6ed7e7959df91e8"},
		{35, "694565f2d416092520f3ec035783983b61c42e22c6c747550ee72c4e9c4f3b3c"},
		{38, "4d2b28fa6db6bf242445460e5a9ecc012d4e6b69a3e4365b8ac7f5ba11ee4559"},
		{40, "93cc7b04ad53df3caa1e9dd251ec711e7772b8edcf50214746978c3f084258e0"},
		{45, "95dce1c3a9ee47cb2bf8cc56730fb4d5ebf4ea3aef9edbf7442f961e5c000b55"},
		{50, "c475bc80a36623a941945353f690025caad5db9df2035a44b7931a21e32c9546"},
		{60, "05936f664158afc7d35f9ae1a1afc6d9c79de96dc9a9e2f0397c126badcdb37d"},
		{66, "c1f1da7a507e4397c6d4e9a7c42e379bafbce33f83ac9d95aea142e0f2940694"},
		{69, "154137a51debfbb46494f5319749e93c88aaa2b14af27feae8336962a1465fd5"},
		{70, "28908e06129e5ce8da5f33f0a0cb84bd07be28b17b8597f17ac0bf060ae3be4c"},
		{71, "8559184e3fb4e21377429fec6c0f50dbc0b3ec675986037242c60a55f6cb6a56"},
		{72, "c3c3b1a29d70c4b2b7b2cae8272bbb63ff33e76b11987aec05286d01707eea2a"},
		{78, "16af409f1d8ca183b565f8a211cd785e45892c51b3b14bf98825591909ed3de0"},
		{25416, "6bc8e5598098e3743f1a092e5da300f3ef61bed6523a793d5a79c462813bef57"},
		{25417, "30b8d1fe55235bb43caa405a64e97a63cfb1843122e1cd756ddbace88e4dfaaa"}, // v13
	},
	Testnet:   {},
	Stagenet:  {},
	Fakechain: {},
}
