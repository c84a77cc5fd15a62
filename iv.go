package jh

// variant binds an output size to the initial state and round schedule it
// is defined over.
type variant struct {
	size     int
	iv       *state
	schedule *schedule
}

var (
	jh224 = variant{size: Size224, iv: &iv224, schedule: &finalSchedule}
	jh256 = variant{size: Size256, iv: &iv256, schedule: &finalSchedule}
	jh384 = variant{size: Size384, iv: &iv384, schedule: &finalSchedule}
	jh512 = variant{size: Size512, iv: &iv512, schedule: &finalSchedule}

	legacyJH224 = variant{size: Size224, iv: &legacyIV224, schedule: &legacySchedule}
	legacyJH256 = variant{size: Size256, iv: &legacyIV256, schedule: &legacySchedule}
	legacyJH384 = variant{size: Size384, iv: &legacyIV384, schedule: &legacySchedule}
	legacyJH512 = variant{size: Size512, iv: &legacyIV512, schedule: &legacySchedule}
)

// Initial states. Each is E8 applied to a state whose first 16 bits hold the
// output size in bits, under the schedule the variant uses.

var iv224 = state{
	0x2dfedd62f99a98ac, 0xae7cacd619d634e7,
	0xa4831005bc301216, 0xb86038c6c9661494,
	0x66d9899f2580706f, 0xce9ea31b1d9b1adc,
	0x11e8325f7b366e10, 0xf994857f02fa06c1,
	0x1b4f1b5cd8c840b3, 0x97f6a17f6e738099,
	0xdcdf93a5adeaa3d3, 0xa431e8dec9539a68,
	0x22b4a98aec86a1e4, 0xd574ac959ce56cf0,
	0x15960deab5ab2bbf, 0x9611dcf0dd64ea6e,
}

var iv256 = state{
	0xeb98a3412c20d3eb, 0x92cdbe7b9cb245c1,
	0x1c93519160d4c7fa, 0x260082d67e508a03,
	0xa4239e267726b945, 0xe0fb1a48d41a9477,
	0xcdb5ab26026b177a, 0x56f024420fff2fa8,
	0x71a396897f2e4d75, 0x1d144908f77de262,
	0x277695f776248f94, 0x87d5b6574780296c,
	0x5c5e272dac8e0d6c, 0x518450c657057a0f,
	0x7be4d367702412ea, 0x89e3ab13d31cd769,
}

var iv384 = state{
	0x481e3bc6d813398a, 0x6d3b5e894ade879b,
	0x63faea68d480ad2e, 0x332ccb21480f8267,
	0x98aec84d9082b928, 0xd455ea3041114249,
	0x36f555b2924847ec, 0xc7250a93baf43ce1,
	0x569b7f8a27db454c, 0x9efcbd496397af0e,
	0x589fc27d26aa80cd, 0x80c08b8c9deb2eda,
	0x8a7981e8f8d5373a, 0xf43967adddd17a71,
	0xa9b4d3bda475d394, 0x976c3fba9842737f,
}

var iv512 = state{
	0x6fd14b963e00aa17, 0x636a2e057a15d543,
	0x8a225e8d0c97ef0b, 0xe9341259f2b3c361,
	0x891da0c1536f801e, 0x2aa9056bea2b6d80,
	0x588eccdb2075baa6, 0xa90f3a76baf83bf7,
	0x0169e60541e34a69, 0x46b58a8e2e6fe65a,
	0x1047a7d0c1843c24, 0x3b6e71b12d5ac199,
	0xcf57f6ec9db1f856, 0xa706887c5716b156,
	0xe3c2fcdfe68517fb, 0x545a4678cc8cdd4b,
}

// The legacy initial states are those published with the 35.5-round JH.
var legacyIV224 = state{
	0x82c270e00bed0230, 0x8d0c3a9e31ce34b1,
	0x8f0c942fba46cd87, 0x1ec4d80afc7971c4,
	0x61e01abb69962d7b, 0xaf71893de13d8697,
	0xd2520460f7c9c094, 0xc76349ca3da5799c,
	0xfd8b551fbdbceb9f, 0x0834bd5bb442f8bf,
	0xba515c35b9c7999e, 0x55a44e6271cc13b3,
	0x85725793c185f725, 0x45366b69005025d2,
	0x3390ebdb27dd1edf, 0xccbaade17e603de9,
}

var legacyIV256 = state{
	0xc968b8e2c53a596e, 0x427e45ef1d7ae6e5,
	0x6145b7d906711f7a, 0x2fc7617806a92201,
	0x7b2991c1b91929e2, 0xc42b4ce18cc5a2d6,
	0x6220beca901b5ddf, 0xd3b205638ea7ac5f,
	0x143e8cba6d313104, 0xb0e7005490527271,
	0x4cce321e075de510, 0x1ba800ece2025178,
	0x9f5772795fd104a5, 0xf0b8b63425f5b238,
	0x1670fa3e5f907f17, 0xe28fc064e769ac90,
}

var legacyIV384 = state{
	0x079c23ab64ab2d40, 0x8cb51ce447dee98d,
	0x8d9bb1627ec25269, 0xbab62d2b002ffc80,
	0xcbafbcef308c173a, 0xad6fa3aa31194031,
	0x898977423a6f4ce3, 0xbf2e732b440ddb7d,
	0xf2c43ecaa63a54e5, 0x8a37b80afc4422c5,
	0xa397c3bc04e9e091, 0x37a80453e14860fa,
	0x7131d33a5fd4bea6, 0xdcda4af8f4338512,
	0x6ec7f8f4c84958d0, 0x8b9e94a34695b6a9,
}

var legacyIV512 = state{
	0x50ab6058c60942cc, 0x4ce7a54cbdb9dc1b,
	0xaf2e7afbd1a15e24, 0xe5f44eabc4d5c0a1,
	0x4cf243660c562073, 0x999381ea9a8b3d18,
	0xcf65d9fca940b6c7, 0x9e831273befe3b66,
	0x0f9a2f7e0a32d8e0, 0x17d491558e0b1340,
	0x05b5e4dec44e5f3f, 0x8cbc5aee98fd1d32,
	0x14081c25e46ce6c4, 0x1b4b95bce1bd43db,
	0x7f229ec243b68014, 0x0a33b909333c0303,
}
