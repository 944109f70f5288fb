package country

// Assigned ISO 3166-1 alpha-2 codes. The value of each constant is its
// ISO 3166-1 numeric code.
const (
	AD Country = 20  // Andorra
	AE Country = 784 // United Arab Emirates
	AF Country = 4   // Afghanistan
	AG Country = 28  // Antigua and Barbuda
	AI Country = 660 // Anguilla
	AL Country = 8   // Albania
	AM Country = 51  // Armenia
	AO Country = 24  // Angola
	AQ Country = 10  // Antarctica
	AR Country = 32  // Argentina
	AS Country = 16  // American Samoa
	AT Country = 40  // Austria
	AU Country = 36  // Australia
	AW Country = 533 // Aruba
	AX Country = 248 // Åland Islands
	AZ Country = 31  // Azerbaijan
	BA Country = 70  // Bosnia and Herzegovina
	BB Country = 52  // Barbados
	BD Country = 50  // Bangladesh
	BE Country = 56  // Belgium
	BF Country = 854 // Burkina Faso
	BG Country = 100 // Bulgaria
	BH Country = 48  // Bahrain
	BI Country = 108 // Burundi
	BJ Country = 204 // Benin
	BL Country = 652 // Saint Barthélemy
	BM Country = 60  // Bermuda
	BN Country = 96  // Brunei Darussalam
	BO Country = 68  // Bolivia (Plurinational State of)
	BQ Country = 535 // Bonaire, Sint Eustatius and Saba
	BR Country = 76  // Brazil
	BS Country = 44  // Bahamas
	BT Country = 64  // Bhutan
	BV Country = 74  // Bouvet Island
	BW Country = 72  // Botswana
	BY Country = 112 // Belarus
	BZ Country = 84  // Belize
	CA Country = 124 // Canada
	CC Country = 166 // Cocos (Keeling) Islands
	CD Country = 180 // Congo (Democratic Republic of the)
	CF Country = 140 // Central African Republic
	CG Country = 178 // Congo
	CH Country = 756 // Switzerland
	CI Country = 384 // Côte d'Ivoire
	CK Country = 184 // Cook Islands
	CL Country = 152 // Chile
	CM Country = 120 // Cameroon
	CN Country = 156 // China
	CO Country = 170 // Colombia
	CR Country = 188 // Costa Rica
	CU Country = 192 // Cuba
	CV Country = 132 // Cabo Verde
	CW Country = 531 // Curaçao
	CX Country = 162 // Christmas Island
	CY Country = 196 // Cyprus
	CZ Country = 203 // Czech Republic
	DE Country = 276 // Germany
	DJ Country = 262 // Djibouti
	DK Country = 208 // Denmark
	DM Country = 212 // Dominica
	DO Country = 214 // Dominican Republic
	DZ Country = 12  // Algeria
	EC Country = 218 // Ecuador
	EE Country = 233 // Estonia
	EG Country = 818 // Egypt
	EH Country = 732 // Western Sahara
	ER Country = 232 // Eritrea
	ES Country = 724 // Spain
	ET Country = 231 // Ethiopia
	FI Country = 246 // Finland
	FJ Country = 242 // Fiji
	FK Country = 238 // Falkland Islands
	FM Country = 583 // Micronesia (Federated States of)
	FO Country = 234 // Faroe Islands
	FR Country = 250 // France
	GA Country = 266 // Gabon
	GB Country = 826 // United Kingdom of Great Britain and Northern Ireland
	GD Country = 308 // Grenada
	GE Country = 268 // Georgia
	GF Country = 254 // French Guiana
	GG Country = 831 // Guernsey
	GH Country = 288 // Ghana
	GI Country = 292 // Gibraltar
	GL Country = 304 // Greenland
	GM Country = 270 // Gambia
	GN Country = 324 // Guinea
	GP Country = 312 // Guadeloupe
	GQ Country = 226 // Equatorial Guinea
	GR Country = 300 // Greece
	GS Country = 239 // South Georgia and the South Sandwich Islands
	GT Country = 320 // Guatemala
	GU Country = 316 // Guam
	GW Country = 624 // Guinea-Bissau
	GY Country = 328 // Guyana
	HK Country = 344 // Hong Kong
	HM Country = 334 // Heard Island and McDonald Islands
	HN Country = 340 // Honduras
	HR Country = 191 // Croatia
	HT Country = 332 // Haiti
	HU Country = 348 // Hungary
	ID Country = 360 // Indonesia
	IE Country = 372 // Ireland
	IL Country = 376 // Israel
	IM Country = 833 // Isle of Man
	IN Country = 356 // India
	IO Country = 86  // British Indian Ocean Territory
	IQ Country = 368 // Iraq
	IR Country = 364 // Iran (Islamic Republic of)
	IS Country = 352 // Iceland
	IT Country = 380 // Italy
	JE Country = 832 // Jersey
	JM Country = 388 // Jamaica
	JO Country = 400 // Jordan
	JP Country = 392 // Japan
	KE Country = 404 // Kenya
	KG Country = 417 // Kyrgyzstan
	KH Country = 116 // Cambodia
	KI Country = 296 // Kiribati
	KM Country = 174 // Comoros
	KN Country = 659 // Saint Kitts and Nevis
	KP Country = 408 // Korea (Democratic People's Republic of)
	KR Country = 410 // Korea (Republic of)
	KW Country = 414 // Kuwait
	KY Country = 136 // Cayman Islands
	KZ Country = 398 // Kazakhstan
	LA Country = 418 // Lao People's Democratic Republic
	LB Country = 422 // Lebanon
	LC Country = 662 // Saint Lucia
	LI Country = 438 // Liechtenstein
	LK Country = 144 // Sri Lanka
	LR Country = 430 // Liberia
	LS Country = 426 // Lesotho
	LT Country = 440 // Lithuania
	LU Country = 442 // Luxembourg
	LV Country = 428 // Latvia
	LY Country = 434 // Libya
	MA Country = 504 // Morocco
	MC Country = 492 // Monaco
	MD Country = 498 // Moldova (Republic of)
	ME Country = 499 // Montenegro
	MF Country = 663 // Saint Martin (French part)
	MG Country = 450 // Madagascar
	MH Country = 584 // Marshall Islands
	MK Country = 807 // Macedonia (the former Yugoslav Republic of)
	ML Country = 466 // Mali
	MM Country = 104 // Myanmar
	MN Country = 496 // Mongolia
	MO Country = 446 // Macao
	MP Country = 580 // Northern Mariana Islands
	MQ Country = 474 // Martinique
	MR Country = 478 // Mauritania
	MS Country = 500 // Montserrat
	MT Country = 470 // Malta
	MU Country = 480 // Mauritius
	MV Country = 462 // Maldives
	MW Country = 454 // Malawi
	MX Country = 484 // Mexico
	MY Country = 458 // Malaysia
	MZ Country = 508 // Mozambique
	NA Country = 516 // Namibia
	NC Country = 540 // New Caledonia
	NE Country = 562 // Niger
	NF Country = 574 // Norfolk Island
	NG Country = 566 // Nigeria
	NI Country = 558 // Nicaragua
	NL Country = 528 // Netherlands
	NO Country = 578 // Norway
	NP Country = 524 // Nepal
	NR Country = 520 // Nauru
	NU Country = 570 // Niue
	NZ Country = 554 // New Zealand
	OM Country = 512 // Oman
	PA Country = 591 // Panama
	PE Country = 604 // Peru
	PF Country = 258 // French Polynesia
	PG Country = 598 // Papua New Guinea
	PH Country = 608 // Philippines
	PK Country = 586 // Pakistan
	PL Country = 616 // Poland
	PM Country = 666 // Saint Pierre and Miquelon
	PN Country = 612 // Pitcairn
	PR Country = 630 // Puerto Rico
	PS Country = 275 // Palestine, State of
	PT Country = 620 // Portugal
	PW Country = 585 // Palau
	PY Country = 600 // Paraguay
	QA Country = 634 // Qatar
	RE Country = 638 // Réunion
	RO Country = 642 // Romania
	RS Country = 688 // Serbia
	RU Country = 643 // Russian Federation
	RW Country = 646 // Rwanda
	SA Country = 682 // Saudi Arabia
	SB Country = 90  // Solomon Islands
	SC Country = 690 // Seychelles
	SD Country = 729 // Sudan
	SE Country = 752 // Sweden
	SG Country = 702 // Singapore
	SH Country = 654 // Saint Helena, Ascension and Tristan da Cunha
	SI Country = 705 // Slovenia
	SJ Country = 744 // Svalbard and Jan Mayen
	SK Country = 703 // Slovakia
	SL Country = 694 // Sierra Leone
	SM Country = 674 // San Marino
	SN Country = 686 // Senegal
	SO Country = 706 // Somalia
	SR Country = 740 // Suriname
	SS Country = 728 // South Sudan
	ST Country = 678 // Sao Tome and Principe
	SV Country = 222 // El Salvador
	SX Country = 534 // Sint Maarten (Dutch part)
	SY Country = 760 // Syrian Arab Republic
	SZ Country = 748 // Swaziland
	TC Country = 796 // Turks and Caicos Islands
	TD Country = 148 // Chad
	TF Country = 260 // French Southern Territories
	TG Country = 768 // Togo
	TH Country = 764 // Thailand
	TJ Country = 762 // Tajikistan
	TK Country = 772 // Tokelau
	TL Country = 626 // Timor-Leste
	TM Country = 795 // Turkmenistan
	TN Country = 788 // Tunisia
	TO Country = 776 // Tonga
	TR Country = 792 // Turkey
	TT Country = 780 // Trinidad and Tobago
	TV Country = 798 // Tuvalu
	TW Country = 158 // Taiwan, Province of China[a]
	TZ Country = 834 // Tanzania, United Republic of
	UA Country = 804 // Ukraine
	UG Country = 800 // Uganda
	UM Country = 581 // United States Minor Outlying Islands
	US Country = 840 // United States of America
	UY Country = 858 // Uruguay
	UZ Country = 860 // Uzbekistan
	VA Country = 336 // Holy See
	VC Country = 670 // Saint Vincent and the Grenadines
	VE Country = 862 // Venezuela (Bolivarian Republic of)
	VG Country = 92  // Virgin Islands (British)
	VI Country = 850 // Virgin Islands (U.S.)
	VN Country = 704 // Viet Nam
	VU Country = 548 // Vanuatu
	WF Country = 876 // Wallis and Futuna
	WS Country = 882 // Samoa
	YE Country = 887 // Yemen
	YT Country = 175 // Mayotte
	ZA Country = 710 // South Africa
	ZM Country = 894 // Zambia
	ZW Country = 716 // Zimbabwe
)

// codeTable is sorted by code and covers every Country exactly once.
// Parse relies on the ordering.
var codeTable = [...]entry{
	{"", Unspecified, ""},
	{"AD", AD, "Andorra"},
	{"AE", AE, "United Arab Emirates"},
	{"AF", AF, "Afghanistan"},
	{"AG", AG, "Antigua and Barbuda"},
	{"AI", AI, "Anguilla"},
	{"AL", AL, "Albania"},
	{"AM", AM, "Armenia"},
	{"AO", AO, "Angola"},
	{"AQ", AQ, "Antarctica"},
	{"AR", AR, "Argentina"},
	{"AS", AS, "American Samoa"},
	{"AT", AT, "Austria"},
	{"AU", AU, "Australia"},
	{"AW", AW, "Aruba"},
	{"AX", AX, "Åland Islands"},
	{"AZ", AZ, "Azerbaijan"},
	{"BA", BA, "Bosnia and Herzegovina"},
	{"BB", BB, "Barbados"},
	{"BD", BD, "Bangladesh"},
	{"BE", BE, "Belgium"},
	{"BF", BF, "Burkina Faso"},
	{"BG", BG, "Bulgaria"},
	{"BH", BH, "Bahrain"},
	{"BI", BI, "Burundi"},
	{"BJ", BJ, "Benin"},
	{"BL", BL, "Saint Barthélemy"},
	{"BM", BM, "Bermuda"},
	{"BN", BN, "Brunei Darussalam"},
	{"BO", BO, "Bolivia (Plurinational State of)"},
	{"BQ", BQ, "Bonaire, Sint Eustatius and Saba"},
	{"BR", BR, "Brazil"},
	{"BS", BS, "Bahamas"},
	{"BT", BT, "Bhutan"},
	{"BV", BV, "Bouvet Island"},
	{"BW", BW, "Botswana"},
	{"BY", BY, "Belarus"},
	{"BZ", BZ, "Belize"},
	{"CA", CA, "Canada"},
	{"CC", CC, "Cocos (Keeling) Islands"},
	{"CD", CD, "Congo (Democratic Republic of the)"},
	{"CF", CF, "Central African Republic"},
	{"CG", CG, "Congo"},
	{"CH", CH, "Switzerland"},
	{"CI", CI, "Côte d'Ivoire"},
	{"CK", CK, "Cook Islands"},
	{"CL", CL, "Chile"},
	{"CM", CM, "Cameroon"},
	{"CN", CN, "China"},
	{"CO", CO, "Colombia"},
	{"CR", CR, "Costa Rica"},
	{"CU", CU, "Cuba"},
	{"CV", CV, "Cabo Verde"},
	{"CW", CW, "Curaçao"},
	{"CX", CX, "Christmas Island"},
	{"CY", CY, "Cyprus"},
	{"CZ", CZ, "Czech Republic"},
	{"DE", DE, "Germany"},
	{"DJ", DJ, "Djibouti"},
	{"DK", DK, "Denmark"},
	{"DM", DM, "Dominica"},
	{"DO", DO, "Dominican Republic"},
	{"DZ", DZ, "Algeria"},
	{"EC", EC, "Ecuador"},
	{"EE", EE, "Estonia"},
	{"EG", EG, "Egypt"},
	{"EH", EH, "Western Sahara"},
	{"ER", ER, "Eritrea"},
	{"ES", ES, "Spain"},
	{"ET", ET, "Ethiopia"},
	{"FI", FI, "Finland"},
	{"FJ", FJ, "Fiji"},
	{"FK", FK, "Falkland Islands"},
	{"FM", FM, "Micronesia (Federated States of)"},
	{"FO", FO, "Faroe Islands"},
	{"FR", FR, "France"},
	{"GA", GA, "Gabon"},
	{"GB", GB, "United Kingdom of Great Britain and Northern Ireland"},
	{"GD", GD, "Grenada"},
	{"GE", GE, "Georgia"},
	{"GF", GF, "French Guiana"},
	{"GG", GG, "Guernsey"},
	{"GH", GH, "Ghana"},
	{"GI", GI, "Gibraltar"},
	{"GL", GL, "Greenland"},
	{"GM", GM, "Gambia"},
	{"GN", GN, "Guinea"},
	{"GP", GP, "Guadeloupe"},
	{"GQ", GQ, "Equatorial Guinea"},
	{"GR", GR, "Greece"},
	{"GS", GS, "South Georgia and the South Sandwich Islands"},
	{"GT", GT, "Guatemala"},
	{"GU", GU, "Guam"},
	{"GW", GW, "Guinea-Bissau"},
	{"GY", GY, "Guyana"},
	{"HK", HK, "Hong Kong"},
	{"HM", HM, "Heard Island and McDonald Islands"},
	{"HN", HN, "Honduras"},
	{"HR", HR, "Croatia"},
	{"HT", HT, "Haiti"},
	{"HU", HU, "Hungary"},
	{"ID", ID, "Indonesia"},
	{"IE", IE, "Ireland"},
	{"IL", IL, "Israel"},
	{"IM", IM, "Isle of Man"},
	{"IN", IN, "India"},
	{"IO", IO, "British Indian Ocean Territory"},
	{"IQ", IQ, "Iraq"},
	{"IR", IR, "Iran (Islamic Republic of)"},
	{"IS", IS, "Iceland"},
	{"IT", IT, "Italy"},
	{"JE", JE, "Jersey"},
	{"JM", JM, "Jamaica"},
	{"JO", JO, "Jordan"},
	{"JP", JP, "Japan"},
	{"KE", KE, "Kenya"},
	{"KG", KG, "Kyrgyzstan"},
	{"KH", KH, "Cambodia"},
	{"KI", KI, "Kiribati"},
	{"KM", KM, "Comoros"},
	{"KN", KN, "Saint Kitts and Nevis"},
	{"KP", KP, "Korea (Democratic People's Republic of)"},
	{"KR", KR, "Korea (Republic of)"},
	{"KW", KW, "Kuwait"},
	{"KY", KY, "Cayman Islands"},
	{"KZ", KZ, "Kazakhstan"},
	{"LA", LA, "Lao People's Democratic Republic"},
	{"LB", LB, "Lebanon"},
	{"LC", LC, "Saint Lucia"},
	{"LI", LI, "Liechtenstein"},
	{"LK", LK, "Sri Lanka"},
	{"LR", LR, "Liberia"},
	{"LS", LS, "Lesotho"},
	{"LT", LT, "Lithuania"},
	{"LU", LU, "Luxembourg"},
	{"LV", LV, "Latvia"},
	{"LY", LY, "Libya"},
	{"MA", MA, "Morocco"},
	{"MC", MC, "Monaco"},
	{"MD", MD, "Moldova (Republic of)"},
	{"ME", ME, "Montenegro"},
	{"MF", MF, "Saint Martin (French part)"},
	{"MG", MG, "Madagascar"},
	{"MH", MH, "Marshall Islands"},
	{"MK", MK, "Macedonia (the former Yugoslav Republic of)"},
	{"ML", ML, "Mali"},
	{"MM", MM, "Myanmar"},
	{"MN", MN, "Mongolia"},
	{"MO", MO, "Macao"},
	{"MP", MP, "Northern Mariana Islands"},
	{"MQ", MQ, "Martinique"},
	{"MR", MR, "Mauritania"},
	{"MS", MS, "Montserrat"},
	{"MT", MT, "Malta"},
	{"MU", MU, "Mauritius"},
	{"MV", MV, "Maldives"},
	{"MW", MW, "Malawi"},
	{"MX", MX, "Mexico"},
	{"MY", MY, "Malaysia"},
	{"MZ", MZ, "Mozambique"},
	{"NA", NA, "Namibia"},
	{"NC", NC, "New Caledonia"},
	{"NE", NE, "Niger"},
	{"NF", NF, "Norfolk Island"},
	{"NG", NG, "Nigeria"},
	{"NI", NI, "Nicaragua"},
	{"NL", NL, "Netherlands"},
	{"NO", NO, "Norway"},
	{"NP", NP, "Nepal"},
	{"NR", NR, "Nauru"},
	{"NU", NU, "Niue"},
	{"NZ", NZ, "New Zealand"},
	{"OM", OM, "Oman"},
	{"PA", PA, "Panama"},
	{"PE", PE, "Peru"},
	{"PF", PF, "French Polynesia"},
	{"PG", PG, "Papua New Guinea"},
	{"PH", PH, "Philippines"},
	{"PK", PK, "Pakistan"},
	{"PL", PL, "Poland"},
	{"PM", PM, "Saint Pierre and Miquelon"},
	{"PN", PN, "Pitcairn"},
	{"PR", PR, "Puerto Rico"},
	{"PS", PS, "Palestine, State of"},
	{"PT", PT, "Portugal"},
	{"PW", PW, "Palau"},
	{"PY", PY, "Paraguay"},
	{"QA", QA, "Qatar"},
	{"RE", RE, "Réunion"},
	{"RO", RO, "Romania"},
	{"RS", RS, "Serbia"},
	{"RU", RU, "Russian Federation"},
	{"RW", RW, "Rwanda"},
	{"SA", SA, "Saudi Arabia"},
	{"SB", SB, "Solomon Islands"},
	{"SC", SC, "Seychelles"},
	{"SD", SD, "Sudan"},
	{"SE", SE, "Sweden"},
	{"SG", SG, "Singapore"},
	{"SH", SH, "Saint Helena, Ascension and Tristan da Cunha"},
	{"SI", SI, "Slovenia"},
	{"SJ", SJ, "Svalbard and Jan Mayen"},
	{"SK", SK, "Slovakia"},
	{"SL", SL, "Sierra Leone"},
	{"SM", SM, "San Marino"},
	{"SN", SN, "Senegal"},
	{"SO", SO, "Somalia"},
	{"SR", SR, "Suriname"},
	{"SS", SS, "South Sudan"},
	{"ST", ST, "Sao Tome and Principe"},
	{"SV", SV, "El Salvador"},
	{"SX", SX, "Sint Maarten (Dutch part)"},
	{"SY", SY, "Syrian Arab Republic"},
	{"SZ", SZ, "Swaziland"},
	{"TC", TC, "Turks and Caicos Islands"},
	{"TD", TD, "Chad"},
	{"TF", TF, "French Southern Territories"},
	{"TG", TG, "Togo"},
	{"TH", TH, "Thailand"},
	{"TJ", TJ, "Tajikistan"},
	{"TK", TK, "Tokelau"},
	{"TL", TL, "Timor-Leste"},
	{"TM", TM, "Turkmenistan"},
	{"TN", TN, "Tunisia"},
	{"TO", TO, "Tonga"},
	{"TR", TR, "Turkey"},
	{"TT", TT, "Trinidad and Tobago"},
	{"TV", TV, "Tuvalu"},
	{"TW", TW, "Taiwan, Province of China[a]"},
	{"TZ", TZ, "Tanzania, United Republic of"},
	{"UA", UA, "Ukraine"},
	{"UG", UG, "Uganda"},
	{"UM", UM, "United States Minor Outlying Islands"},
	{"US", US, "United States of America"},
	{"UY", UY, "Uruguay"},
	{"UZ", UZ, "Uzbekistan"},
	{"VA", VA, "Holy See"},
	{"VC", VC, "Saint Vincent and the Grenadines"},
	{"VE", VE, "Venezuela (Bolivarian Republic of)"},
	{"VG", VG, "Virgin Islands (British)"},
	{"VI", VI, "Virgin Islands (U.S.)"},
	{"VN", VN, "Viet Nam"},
	{"VU", VU, "Vanuatu"},
	{"WF", WF, "Wallis and Futuna"},
	{"WS", WS, "Samoa"},
	{"YE", YE, "Yemen"},
	{"YT", YT, "Mayotte"},
	{"ZA", ZA, "South Africa"},
	{"ZM", ZM, "Zambia"},
	{"ZW", ZW, "Zimbabwe"},
}

// aliases are alternate names accepted by FromName in addition to the
// short name of every country.
var aliases = [...]alias{
	{"Micronesia", FM},
	{"United Kingdom of Great Britain", GB},
	{"Iran", IR},
	{"Macedonia", MK},
	{"Tanzania", TZ},
	{"Venezuela", VE},
}
