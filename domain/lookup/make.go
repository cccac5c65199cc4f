package lookup

// Make normalizes the free-form vehicle make spellings found in party records.
// Spellings that carry no make, such as "________", display as null.
var Make = Table{
	"(UNK)":                   "",
	"--":                      "",
	"---":                     "",
	"/":                       "",
	"ACAD":                    "acadian",
	"ACADIAN":                 "acadian",
	"ACCURA":                  "acura",
	"ACRU":                    "acura",
	"ACRUA":                   "acura",
	"ACU":                     "acura",
	"ACUA":                    "acura",
	"ACUR /":                  "acura",
	"ACUR":                    "acura",
	"ACURA":                   "acura",
	"ACURA/":                  "acura",
	"ALFA ROMEO":              "alfa romera",
	"ALFA ROMERO":             "alfa romera",
	"ALFA":                    "alfa romera",
	"ALFR":                    "alfa romera",
	"AMER":                    "american motors",
	"AMERI":                   "american motors",
	"AMERICAN LA FRANCE":      "american lafrance",
	"AMERICAN MOTORS (AMC)":   "american motors",
	"AMERICAN MOTORS":         "american motors",
	"AMERICAN":                "american motors",
	"AUD":                     "audi",
	"AUDI /":                  "audi",
	"AUDI":                    "audi",
	"AUDI/":                   "audi",
	"AUDU":                    "audi",
	"AUID":                    "audi",
	"AUIDI":                   "audi",
	"AUTOCAR":                 "autocar",
	"BENT":                    "bentley",
	"BENTL":                   "bentley",
	"BENTLEY":                 "bentley",
	"BENZ":                    "mercedes-benz",
	"BLU BIRD":                "bluebird",
	"BLU":                     "bluebird",
	"BLUB":                    "bluebird",
	"BLUBD":                   "bluebird",
	"BLUBI":                   "bluebird",
	"BLUBIRD":                 "bluebird",
	"BLUBR":                   "bluebird",
	"BLUBRD":                  "bluebird",
	"BLUE BIR":                "bluebird",
	"BLUE BIRD":               "bluebird",
	"BLUE":                    "bluebird",
	"BLUEB":                   "bluebird",
	"BLUEBIR":                 "bluebird",
	"BLUEBIRD (BUS)":          "bluebird",
	"BLUEBIRD":                "bluebird",
	"BMW /":                   "bmw",
	"BMW":                     "bmw",
	"BMW/":                    "bmw",
	"BMW1":                    "bmw",
	"BMW`":                    "bmw",
	"BUCIK":                   "buick",
	"BUCK":                    "buick",
	"BUI":                     "buick",
	"BUIC":                    "buick",
	"BUICK":                   "buick",
	"BUICK/":                  "buick",
	"BUIK":                    "buick",
	"BWM":                     "bmw",
	"BWW":                     "bmw",
	"CADI":                    "cadillac",
	"CADI/":                   "cadillac",
	"CADIL":                   "cadillac",
	"CADILA":                  "cadillac",
	"CADILAC":                 "cadillac",
	"CADILL":                  "cadillac",
	"CADILLA":                 "cadillac",
	"CADILLAC":                "cadillac",
	"CEHV":                    "chevrolet",
	"CEHVY":                   "chevrolet",
	"CHEROLET":                "chevrolet",
	"CHEV /":                  "chevrolet",
	"CHEV":                    "chevrolet",
	"CHEV/":                   "chevrolet",
	"CHEVE":                   "chevrolet",
	"CHEVER":                  "chevrolet",
	"CHEVEROL":                "chevrolet",
	"CHEVEY":                  "chevrolet",
	"CHEVOLET":                "chevrolet",
	"CHEVR":                   "chevrolet",
	"CHEVRLET":                "chevrolet",
	"CHEVRLT":                 "chevrolet",
	"CHEVRO":                  "chevrolet",
	"CHEVROEL":                "chevrolet",
	"CHEVROET":                "chevrolet",
	"CHEVROL":                 "chevrolet",
	"CHEVROLE":                "chevrolet",
	"CHEVROLET":               "chevrolet",
	"CHEVROLT":                "chevrolet",
	"CHEVT":                   "chevrolet",
	"CHEVY":                   "chevrolet",
	"CHEVY/":                  "chevrolet",
	"CHEV`":                   "chevrolet",
	"CHRS":                    "chrysler",
	"CHRSLER":                 "chrysler",
	"CHRSY":                   "chrysler",
	"CHRY":                    "chrysler",
	"CHRY/":                   "chrysler",
	"CHRYL":                   "chrysler",
	"CHRYLER":                 "chrysler",
	"CHRYLSER":                "chrysler",
	"CHRYS":                   "chrysler",
	"CHRYS/":                  "chrysler",
	"CHRYSER":                 "chrysler",
	"CHRYSL":                  "chrysler",
	"CHRYSLE":                 "chrysler",
	"CHRYSLER":                "chrysler",
	"CHRYSLR":                 "chrysler",
	"CHRYST":                  "chrysler",
	"CHRYSTLE":                "chrysler",
	"CHV":                     "chevrolet",
	"CHVROLET":                "chevrolet",
	"CHVY":                    "chevrolet",
	"CHY":                     "chrysler",
	"CHYRSLER":                "chrysler",
	"CHYSLER":                 "chrysler",
	"CROW":                    "crown",
	"CROWN (BUS)":             "crown",
	"CROWN":                   "crown",
	"CRY":                     "chrysler",
	"CRYS":                    "chrysler",
	"CRYSLER":                 "chrysler",
	"D0DGE":                   "dodge",
	"DAEW":                    "daewoo",
	"DAEWO":                   "daewoo",
	"DAEWOO":                  "daewoo",
	"DATS":                    "datsun",
	"DATSU":                   "datsun",
	"DATSUN":                  "datsun",
	"DATSUN/NISSAN":           "nissan",
	"DDGE":                    "dodge",
	"DDOGE":                   "dodge",
	"DELOREAN":                "delorean",
	"DOD":                     "dodge",
	"DODDGE":                  "dodge",
	"DODE":                    "dodge",
	"DODEG":                   "dodge",
	"DODG /":                  "dodge",
	"DODG":                    "dodge",
	"DODG/":                   "dodge",
	"DODGE /":                 "dodge",
	"DODGE":                   "dodge",
	"DODGE/":                  "dodge",
	"DODGER":                  "dodge",
	"DODGE`":                  "dodge",
	"DODGW":                   "dodge",
	"DOG":                     "dodge",
	"DOGDE":                   "dodge",
	"DOGE":                    "dodge",
	"DOGGE":                   "dodge",
	"DUCA":                    "ducati",
	"DUCAT":                   "ducati",
	"DUCATI (MOTORCYCLE)":     "ducati",
	"DUCATI":                  "ducati",
	"DUCTI":                   "ducati",
	"FERRARA":                 "ferrari",
	"FERRARI":                 "ferrari",
	"FIAT":                    "fiat",
	"FIAT-ABARTH":             "fiat",
	"FOR":                     "ford",
	"FORC":                    "ford",
	"FORD /":                  "ford",
	"FORD":                    "ford",
	"FORD/":                   "ford",
	"FORDE":                   "ford",
	"FORD`":                   "ford",
	"FORE":                    "ford",
	"FORED":                   "ford",
	"FORF":                    "ford",
	"FORN":                    "",
	"FORR":                    "ford",
	"FORRD":                   "ford",
	"FORS":                    "ford",
	"FRD":                     "ford",
	"FREHT":                   "freightliner",
	"FREI /":                  "freightliner",
	"FREI":                    "freightliner",
	"FREIG":                   "freightliner",
	"FREIGH":                  "freightliner",
	"FREIGHT LINER":           "freightliner",
	"FREIGHT":                 "freightliner",
	"FREIGHTL":                "freightliner",
	"FREIGHTLINER CORP":       "freightliner",
	"FREIGHTLINER":            "freightliner",
	"FREIGT":                  "freightliner",
	"FREIHT":                  "freightliner",
	"FREIT":                   "freightliner",
	"FREITLIN":                "freightliner",
	"FREITLNR":                "freightliner",
	"FRGH":                    "freightliner",
	"FRGHT":                   "freightliner",
	"FRGHT.":                  "freightliner",
	"FRGHTLNR":                "freightliner",
	"FRGT":                    "freightliner",
	"FRGTH":                   "freightliner",
	"FRGTLNR":                 "freightliner",
	"FRH":                     "freightliner",
	"FRHGT":                   "freightliner",
	"FRHI":                    "freightliner",
	"FRHK":                    "freightliner",
	"FRHT /":                  "freightliner",
	"FRHT":                    "freightliner",
	"FRHT.":                   "freightliner",
	"FRHT/":                   "freightliner",
	"FRHTL":                   "freightliner",
	"FRHTLINE":                "freightliner",
	"FRHTLINR":                "freightliner",
	"FRHTLN":                  "freightliner",
	"FRHTLNR":                 "freightliner",
	"FRI":                     "freightliner",
	"FRIE":                    "freightliner",
	"FRIEGH":                  "freightliner",
	"FRIEGHT":                 "freightliner",
	"FRIEGHTL":                "freightliner",
	"FRIET":                   "freightliner",
	"FRIGH":                   "freightliner",
	"FRIGHT":                  "freightliner",
	"FROD":                    "ford",
	"FRT":                     "freightliner",
	"FRTH":                    "freightliner",
	"FRTL":                    "freightliner",
	"FRTLINER":                "freightliner",
	"FRTLN":                   "freightliner",
	"FRTLNR":                  "freightliner",
	"FTL":                     "freightliner",
	"FTLR":                    "freightliner",
	"GENERAL MOTORS CORP":     "gmc",
	"GENERAL":                 "gmc",
	"GEO":                     "geo",
	"GILG":                    "gillig",
	"GILIG":                   "gillig",
	"GILL":                    "gillig",
	"GILLI":                   "gillig",
	"GILLIC":                  "gillig",
	"GILLIG (BUS)":            "gillig",
	"GILLIG BUS":              "gillig",
	"GILLIG":                  "gillig",
	"GM":                      "gmc",
	"GMA":                     "gmc",
	"GMC (GENERAL MOTORS)":    "gmc",
	"GMC /":                   "gmc",
	"GMC":                     "gmc",
	"GMC/":                    "gmc",
	"GMG":                     "gmc",
	"GMS":                     "gmc",
	"GMV":                     "gmc",
	"GMX":                     "gmc",
	"GMZ":                     "gmc",
	"GNC":                     "gmc",
	"GRUM":                    "grumman",
	"GRUMAN":                  "grumman",
	"GRUMANN":                 "grumman",
	"GRUMIN":                  "grumman",
	"GRUMM":                   "grumman",
	"GRUMMAN MOTOR HOME":      "grumman",
	"GRUMMAN":                 "grumman",
	"H0NDA":                   "honda",
	"HANDA":                   "honda",
	"HARL /":                  "harley-davidson",
	"HARL DAV":                "harley-davidson",
	"HARL":                    "harley-davidson",
	"HARLE":                   "harley-davidson",
	"HARLEY D":                "harley-davidson",
	"HARLEY DAVIDSON":         "harley-davidson",
	"HARLEY":                  "harley-davidson",
	"HARLEY-D":                "harley-davidson",
	"HARLEY-DAVIDSON":         "harley-davidson",
	"HARLEYD":                 "harley-davidson",
	"HARLY":                   "harley-davidson",
	"HD":                      "harley-davidson",
	"HD/":                     "harley-davidson",
	"HINO":                    "hino",
	"HINO/":                   "hino",
	"HIOND":                   "honda",
	"HIONDA":                  "honda",
	"HODNA":                   "honda",
	"HOINDA":                  "honda",
	"HON":                     "honda",
	"HONA":                    "honda",
	"HONAD":                   "honda",
	"HOND /":                  "honda",
	"HOND":                    "honda",
	"HOND/":                   "honda",
	"HONDA /":                 "honda",
	"HONDA MC":                "honda",
	"HONDA":                   "honda",
	"HONDA/":                  "honda",
	"HONDAS":                  "honda",
	"HONDAY":                  "honda",
	"HONDA`":                  "honda",
	"HONDS":                   "honda",
	"HONE":                    "honda",
	"HONF":                    "honda",
	"HONG":                    "honda",
	"HONS":                    "honda",
	"HONSA":                   "honda",
	"HUMM":                    "hummer",
	"HUMME":                   "hummer",
	"HUMMER":                  "hummer",
	"HUMVEE":                  "hummer",
	"HUN":                     "hyundai",
	"HUNDAI":                  "hyundai",
	"HUYN":                    "hyundai",
	"HUYNDAI":                 "hyundai",
	"HYN":                     "hyundai",
	"HYND":                    "hyundai",
	"HYNDAI":                  "hyundai",
	"HYNU":                    "hyundai",
	"HYNUDAI":                 "hyundai",
	"HYU N":                   "hyundai",
	"HYU":                     "hyundai",
	"HYUAN":                   "hyundai",
	"HYUANDAI":                "hyundai",
	"HYUD":                    "hyundai",
	"HYUDAI":                  "hyundai",
	"HYUIN":                   "hyundai",
	"HYUM":                    "hyundai",
	"HYUN /":                  "hyundai",
	"HYUN":                    "hyundai",
	"HYUN/":                   "hyundai",
	"HYUNA":                   "hyundai",
	"HYUNAI":                  "hyundai",
	"HYUND":                   "hyundai",
	"HYUNDA":                  "hyundai",
	"HYUNDAI":                 "hyundai",
	"HYUNDAI/":                "hyundai",
	"HYUNDAU":                 "hyundai",
	"HYUNDAY":                 "hyundai",
	"HYUNDI":                  "hyundai",
	"HYUNDIA":                 "hyundai",
	"HYUU":                    "hyundai",
	"HYUUN":                   "hyundai",
	"INF":                     "infiniti",
	"INFI /":                  "infiniti",
	"INFI":                    "infiniti",
	"INFIN":                   "infiniti",
	"INFIN/":                  "infiniti",
	"INFINI":                  "infiniti",
	"INFINIT":                 "infiniti",
	"INFINITE":                "infiniti",
	"INFINITI":                "infiniti",
	"INFINITY":                "infiniti",
	"INFINT":                  "infiniti",
	"INFINTI":                 "infiniti",
	"INFINTY":                 "infiniti",
	"INFIT":                   "infiniti",
	"INIF":                    "infiniti",
	"INIFI":                   "infiniti",
	"INIFINIT":                "infiniti",
	"INIFNITI":                "infiniti",
	"INTER":                   "international harvester",
	"INTERNAT":                "international harvester",
	"INTERNATIONAL HARVESTER": "international harvester",
	"INTL":                    "",
	"ISU":                     "isuzu",
	"ISUZ":                    "isuzu",
	"ISUZU":                   "isuzu",
	"JAG":                     "jaguar",
	"JAGA":                    "jaguar",
	"JAGU":                    "jaguar",
	"JAGUA":                   "jaguar",
	"JAGUAR":                  "jaguar",
	"JDEER":                   "john deere",
	"JEE":                     "jeep",
	"JEEEP":                   "jeep",
	"JEEF":                    "jeep",
	"JEEO":                    "jeep",
	"JEEP /":                  "jeep",
	"JEEP":                    "jeep",
	"JEEP/":                   "jeep",
	"JEPP":                    "jeep",
	"JOHN DEE":                "john deere",
	"JOHN DEER":               "john deere",
	"JOHN DEERE":              "john deere",
	"JOHN":                    "john deere",
	"JOHND":                   "john deere",
	"JOHNDEER":                "john deere",
	"KAWA":                    "kawasaki",
	"KAWAI":                   "kawasaki",
	"KAWAK":                   "kawasaki",
	"KAWAS":                   "kawasaki",
	"KAWASA":                  "kawasaki",
	"KAWASAK":                 "kawasaki",
	"KAWASAKI":                "kawasaki",
	"KAWASKI":                 "kawasaki",
	"KAWI":                    "kawasaki",
	"KAWK":                    "kawasaki",
	"KENW":                    "kenworth",
	"KENWO":                   "kenworth",
	"KENWOR":                  "kenworth",
	"KENWORT":                 "kenworth",
	"KENWORTH":                "kenworth",
	"KENWRTH":                 "kenworth",
	"KIA /":                   "kia",
	"KIA":                     "kia",
	"KIA/":                    "kia",
	"KIO":                     "kia",
	"KIS":                     "kia",
	"LAND ROVER":              "land rover",
	"LAND RVR":                "land rover",
	"LAND":                    "land rover",
	"LANDR":                   "land rover",
	"LANDRO":                  "land rover",
	"LANDROVE":                "land rover",
	"LANDROVER":               "land rover",
	"LANDRVR":                 "land rover",
	"LES":                     "lexus",
	"LESU":                    "lexus",
	"LEX":                     "lexus",
	"LEXAS":                   "lexus",
	"LEXI":                    "lexus",
	"LEXIS":                   "lexus",
	"LEXS /":                  "lexus",
	"LEXS":                    "lexus",
	"LEXSS":                   "lexus",
	"LEXSUS":                  "lexus",
	"LEXU /":                  "lexus",
	"LEXU":                    "lexus",
	"LEXUS":                   "lexus",
	"LEXUS/":                  "lexus",
	"LEXUX":                   "lexus",
	"LEZ":                     "lexus",
	"LEZUS":                   "lexus",
	"LICOLN":                  "lincoln",
	"LIN":                     "lincoln",
	"LINC /":                  "lincoln",
	"LINC":                    "lincoln",
	"LINCL":                   "lincoln",
	"LINCO":                   "lincoln",
	"LINCOL":                  "lincoln",
	"LINCOLN CONTINENTAL":     "lincoln",
	"LINCOLN":                 "lincoln",
	"LINCOLN/":                "lincoln",
	"LINCON":                  "lincoln",
	"LND RVR":                 "land rover",
	"LNDR":                    "land rover",
	"LNDRVR":                  "land rover",
	"LUXUS":                   "lexus",
	"LXS":                     "lexus",
	"MACK":                    "mack",
	"MADA":                    "mazda",
	"MADZA":                   "mazda",
	"MASE":                    "maserati",
	"MASER":                   "maserati",
	"MASERATI":                "maserati",
	"MASERATT":                "maserati",
	"MASI":                    "maserati",
	"MAXDA":                   "mazda",
	"MAZ":                     "mazda",
	"MAZA":                    "mazda",
	"MAZAD":                   "mazda",
	"MAZADA":                  "mazda",
	"MAZD /":                  "mazda",
	"MAZD":                    "mazda",
	"MAZDA /":                 "mazda",
	"MAZDA 3":                 "mazda",
	"MAZDA 6":                 "mazda",
	"MAZDA":                   "mazda",
	"MAZDA/":                  "mazda",
	"MAZDZ":                   "mazda",
	"MAZERATI":                "maserati",
	"MERB /":                  "mercedes-benz",
	"MERB":                    "mercedes-benz",
	"MERB.":                   "mercedes-benz",
	"MERB/":                   "mercedes-benz",
	"MERBENZ":                 "mercedes-benz",
	"MERBNZ":                  "mercedes-benz",
	"MERC":                    "mercury",
	"MERCE":                   "mercedes-benz",
	"MERCED":                  "mercedes-benz",
	"MERCEDE":                 "mercedes-benz",
	"MERCEDES BENZ":           "mercedes-benz",
	"MERCEDES":                "mercedes-benz",
	"MERCEDES-BENZ":           "mercedes-benz",
	"MERCEDEZ":                "mercedes-benz",
	"MERCEDS":                 "mercedes-benz",
	"MERCU":                   "mercury",
	"MERCUR":                  "mercury",
	"MERCURY":                 "mercury",
	"MERD":                    "mercury",
	"MERZ /":                  "mercedes-benz",
	"MERZ BNZ":                "mercedes-benz",
	"MERZ":                    "mercedes-benz",
	"MERZ/":                   "mercedes-benz",
	"MERZB":                   "mercedes-benz",
	"MINI COOPER":             "mini",
	"MINI":                    "mini",
	"MINN":                    "mini",
	"MINNI":                   "mini",
	"MISCELLANEOUS":           "",
	"MISSAN":                  "nissan",
	"MIST":                    "mitsubishi",
	"MISTU":                   "mitsubishi",
	"MIT":                     "mitsubishi",
	"MITI":                    "mitsubishi",
	"MITS /":                  "mitsubishi",
	"MITS":                    "mitsubishi",
	"MITS.":                   "mitsubishi",
	"MITS/":                   "mitsubishi",
	"MITSH":                   "mitsubishi",
	"MITSU":                   "mitsubishi",
	"MITSUB":                  "mitsubishi",
	"MITSUBI":                 "mitsubishi",
	"MITSUBIS":                "mitsubishi",
	"MITSUBISHI":              "mitsubishi",
	"MITT":                    "mitsubishi",
	"MITTS":                   "mitsubishi",
	"MITU":                    "mitsubishi",
	"MITZ":                    "mitsubishi",
	"MNI":                     "mini",
	"MNICP":                   "mini",
	"MNNI":                    "mini",
	"MZD":                     "mazda",
	"MZDA":                    "mazda",
	"N/A":                     "",
	"NII":                     "nissan",
	"NIIS":                    "nissan",
	"NIISAN":                  "nissan",
	"NIISS":                   "nissan",
	"NIISSAN":                 "nissan",
	"NIS":                     "nissan",
	"NISA":                    "nissan",
	"NISAA":                   "nissan",
	"NISAAN":                  "nissan",
	"NISAN":                   "nissan",
	"NISAS":                   "nissan",
	"NISS /":                  "nissan",
	"NISS":                    "nissan",
	"NISS/":                   "nissan",
	"NISSA N":                 "nissan",
	"NISSA":                   "nissan",
	"NISSAM":                  "nissan",
	"NISSAN /":                "nissan",
	"NISSAN":                  "nissan",
	"NISSAN/":                 "nissan",
	"NISSANA":                 "nissan",
	"NISSAN`":                 "nissan",
	"NISSAS":                  "nissan",
	"NISSASN":                 "nissan",
	"NISSI":                   "nissan",
	"NISSIAN":                 "nissan",
	"NISSN":                   "nissan",
	"NISSNA":                  "nissan",
	"NISSS":                   "nissan",
	"NISSSAN":                 "nissan",
	"NOT STATED":              "",
	"ODYSSEY":                 "honda",
	"OLDS":                    "oldsmobile",
	"OLDSM":                   "oldsmobile",
	"OLDSMO":                  "oldsmobile",
	"OLDSMOBI":                "oldsmobile",
	"OLDSMOBILE":              "oldsmobile",
	"OLS":                     "oldsmobile",
	"OTHER - ATV":             "",
	"OTHER - AUTO":            "",
	"OTHER - BUS":             "",
	"OTHER - DOMESTIC":        "",
	"OTHER - MOPED":           "",
	"OTHER - MOTORCYCLE":      "",
	"OTHER - MOTORHOME":       "",
	"OTHER - PICKUP":          "",
	"OTHER - SCHOOL BUS":      "",
	"OTHER - TRUCK":           "",
	"OTHER DOMESTICS":         "",
	"OTHER FOREIGN":           "",
	"OTHER":                   "",
	"PETE":                    "peterbilt",
	"PETEBILT":                "peterbilt",
	"PETER":                   "peterbilt",
	"PETERB":                  "peterbilt",
	"PETERBI":                 "peterbilt",
	"PETERBIL":                "peterbilt",
	"PETERBILT":               "peterbilt",
	"PETERBL":                 "peterbilt",
	"PETERBLT":                "peterbilt",
	"PETERBU":                 "peterbilt",
	"PETERBUI":                "peterbilt",
	"PETERBUILT":              "peterbilt",
	"PETERBUL":                "peterbilt",
	"PETKT":                   "peterbilt",
	"PETR":                    "peterbilt",
	"PETRB":                   "peterbilt",
	"PETRBILT":                "peterbilt",
	"PETRBLT":                 "peterbilt",
	"PLY":                     "plymouth",
	"PLYM":                    "plymouth",
	"PLYMO":                   "plymouth",
	"PLYMOTH":                 "plymouth",
	"PLYMOU":                  "plymouth",
	"PLYMOUTH":                "plymouth",
	"PONI":                    "pontiac",
	"PONIT":                   "pontiac",
	"PONITAC":                 "pontiac",
	"PONT":                    "pontiac",
	"PONTAIC":                 "pontiac",
	"PONTI":                   "pontiac",
	"PONTIA":                  "pontiac",
	"PONTIAC":                 "pontiac",
	"PONTIAC/":                "pontiac",
	"PONTIC":                  "pontiac",
	"POR":                     "porsche",
	"PORC":                    "porsche",
	"PORCH":                   "porsche",
	"PORCHE":                  "porsche",
	"PORS":                    "porsche",
	"PORSC":                   "porsche",
	"PORSCE":                  "porsche",
	"PORSCH":                  "porsche",
	"PORSCHE":                 "porsche",
	"PORSCHE/":                "porsche",
	"PORSE":                   "porsche",
	"PORSH":                   "porsche",
	"PORSHE":                  "porsche",
	"PRIUS":                   "toyota",
	"PRTB":                    "peterbilt",
	"PTB":                     "peterbilt",
	"PTBL":                    "peterbilt",
	"PTBLT":                   "peterbilt",
	"PTBR":                    "peterbilt",
	"PTBT":                    "peterbilt",
	"PTE":                     "peterbilt",
	"PTER":                    "peterbilt",
	"PTR":                     "peterbilt",
	"PTRB /":                  "peterbilt",
	"PTRB":                    "peterbilt",
	"PTRB/":                   "peterbilt",
	"PTRBILT":                 "peterbilt",
	"PTRBL":                   "peterbilt",
	"PTRBLT":                  "peterbilt",
	"PTRBT":                   "peterbilt",
	"PTRBUILT":                "peterbilt",
	"RAD CITY":                "rad power bikes",
	"RAD POWE":                "rad power bikes",
	"RAD":                     "rad power bikes",
	"RADPOWER":                "rad power bikes",
	"RADROVER":                "rad power bikes",
	"RAM 2500":                "ram",
	"RAM":                     "ram",
	"RAM/":                    "ram",
	"RAN":                     "ram",
	"RANG":                    "land rover",
	"RANGE RO":                "land rover",
	"RANGE ROVER":             "land rover",
	"RANGE RV":                "land rover",
	"RANGE":                   "land rover",
	"RANGER":                  "land rover",
	"RANGEROV":                "land rover",
	"RNG ROVR":                "land rover",
	"RNG RVR":                 "land rover",
	"RNGRV":                   "land rover",
	"RNGRVR":                  "land rover",
	"RORD":                    "ford",
	"ROVER":                   "land rover",
	"SAAB":                    "saab",
	"SATN":                    "saturn",
	"SATR":                    "saturn",
	"SATRN":                   "saturn",
	"SATRU":                   "saturn",
	"SATRUN":                  "saturn",
	"SATU":                    "saturn",
	"SATUN":                   "saturn",
	"SATUR":                   "saturn",
	"SATURN":                  "saturn",
	"SATURN/":                 "saturn",
	"SATY":                    "saturn",
	"SCHW":                    "schwinn",
	"SCHWIN":                  "schwinn",
	"SCHWINN":                 "schwinn",
	"SCHWYNN":                 "schwinn",
	"SCIO":                    "scion",
	"SCIOIN":                  "scion",
	"SCION":                   "scion",
	"SCOIN":                   "scion",
	"SCWHINN":                 "schwinn",
	"SCWINN":                  "schwinn",
	"SHWIN":                   "schwinn",
	"SHWINN":                  "schwinn",
	"SMAR":                    "smart",
	"SMART":                   "smart",
	"STERLI":                  "sterling",
	"STERLIN":                 "sterling",
	"STERLING":                "sterling",
	"STRN /":                  "saturn",
	"STRN":                    "saturn",
	"STURN":                   "saturn",
	"SUB":                     "subaru",
	"SUBA /":                  "subaru",
	"SUBA":                    "subaru",
	"SUBAR":                   "subaru",
	"SUBARA":                  "subaru",
	"SUBARAU":                 "subaru",
	"SUBARI":                  "subaru",
	"SUBARU":                  "subaru",
	"SUBARU/":                 "subaru",
	"SUBARY":                  "subaru",
	"SUBI":                    "subaru",
	"SUBN":                    "subaru",
	"SUBR":                    "subaru",
	"SUBRA":                   "subaru",
	"SUBRARU":                 "subaru",
	"SUBRAU":                  "subaru",
	"SUBRU":                   "subaru",
	"SUBU":                    "subaru",
	"SUBUARU":                 "subaru",
	"SUBUR":                   "subaru",
	"SUBURA":                  "subaru",
	"SUBURU":                  "subaru",
	"SUS":                     "suzuki",
	"SUSUKI":                  "suzuki",
	"SUV":                     "",
	"SUZ":                     "suzuki",
	"SUZI":                    "suzuki",
	"SUZIKI":                  "suzuki",
	"SUZK":                    "suzuki",
	"SUZKI":                   "suzuki",
	"SUZU /":                  "suzuki",
	"SUZU":                    "suzuki",
	"SUZUK":                   "suzuki",
	"SUZUKI MC":               "suzuki",
	"SUZUKI":                  "suzuki",
	"SUZUKI/":                 "suzuki",
	"T0Y":                     "toyota",
	"T0YOTA":                  "toyota",
	"TAHOE":                   "gmc",
	"TAOTA":                   "toyota",
	"TAOTAO":                  "toyota",
	"TESL":                    "tesla",
	"TESLA MOTORS":            "tesla",
	"TESLA":                   "tesla",
	"TESLA/":                  "tesla",
	"THOM":                    "thomas",
	"THOMA":                   "thomas",
	"THOMAS (BUS)":            "thomas",
	"THOMAS B":                "thomas",
	"THOMAS":                  "thomas",
	"TOT":                     "toyota",
	"TOTA":                    "toyota",
	"TOTO":                    "toyota",
	"TOTOTA":                  "toyota",
	"TOTOYA":                  "toyota",
	"TOTOYTA":                 "toyota",
	"TOTY":                    "toyota",
	"TOTYOA":                  "toyota",
	"TOTYOTA":                 "toyota",
	"TOY":                     "toyota",
	"TOY/SCIO":                "toyota",
	"TOY0":                    "toyota",
	"TOY0TA":                  "toyota",
	"TOYA":                    "toyota",
	"TOYAT":                   "toyota",
	"TOYATA":                  "toyota",
	"TOYI":                    "toyota",
	"TOYO /":                  "toyota",
	"TOYO":                    "toyota",
	"TOYO/":                   "toyota",
	"TOYO/SCI":                "toyota",
	"TOYOA":                   "toyota",
	"TOYOAT":                  "toyota",
	"TOYORA":                  "toyota",
	"TOYOT":                   "toyota",
	"TOYOTA":                  "toyota",
	"TOYOTA/":                 "toyota",
	"TOYOTAS":                 "toyota",
	"TOYOTA`":                 "toyota",
	"TOYOTO":                  "toyota",
	"TOYOTOA":                 "toyota",
	"TOYOTR":                  "toyota",
	"TOYOTRA":                 "toyota",
	"TOYOTS":                  "toyota",
	"TOYOTYA":                 "toyota",
	"TOYOY":                   "toyota",
	"TOYOYA":                  "toyota",
	"TOYOYTA":                 "toyota",
	"TOYO`":                   "toyota",
	"TOYR":                    "toyota",
	"TOYT /":                  "toyota",
	"TOYT":                    "toyota",
	"TOYT.":                   "toyota",
	"TOYT/":                   "toyota",
	"TOYT/SCI":                "toyota",
	"TOYTA":                   "toyota",
	"TOYTO":                   "toyota",
	"TOYTOA":                  "toyota",
	"TOYTOTA":                 "toyota",
	"TOYTT":                   "toyota",
	"TOYY":                    "toyota",
	"TREC":                    "trek",
	"TRECK":                   "trek",
	"TREK":                    "trek",
	"TREK.value, INC.":        "trek",
	"TRIPH":                   "triumph",
	"TRIU":                    "triumph",
	"TRIUM":                   "triumph",
	"TRIUMP":                  "triumph",
	"TRIUMPH":                 "triumph",
	"TRIUPH":                  "triumph",
	"TRUIMPH":                 "triumph",
	"TRUM":                    "triumph",
	"TSLA":                    "tesla",
	"TSMR":                    "tesla",
	"TUNDRA":                  "toyota",
	"TYOT":                    "toyota",
	"TYOTA":                   "toyota",
	"UBER":                    "",
	"UKN":                     "",
	"UKNONWN":                 "",
	"UKNOWN":                  "",
	"UNK /":                   "",
	"UNK":                     "",
	"UNK.":                    "",
	"UNK/":                    "",
	"UNKN":                    "",
	"UNKN/":                   "",
	"UNKNONW":                 "",
	"UNKNOW":                  "",
	"UNKNOWN":                 "",
	"UNKNOWN/":                "",
	"UNKNWN":                  "",
	"UNKNWON":                 "",
	"UNKOWN":                  "",
	"UNKWN":                   "",
	"UNNKNOWN":                "",
	"UNNOWN":                  "",
	"V & W":                   "volkswagen",
	"V W":                     "volkswagen",
	"V.W.":                    "volkswagen",
	"V/W":                     "volkswagen",
	"VESP":                    "vespa",
	"VESPA":                   "vespa",
	"VOK":                     "volkswagen",
	"VOKS":                    "volkswagen",
	"VOLCO":                   "volvo",
	"VOLK /":                  "volkswagen",
	"VOLK":                    "volkswagen",
	"VOLK/":                   "volkswagen",
	"VOLKD":                   "volkswagen",
	"VOLKL":                   "volkswagen",
	"VOLKS":                   "volkswagen",
	"VOLKS/":                  "volkswagen",
	"VOLKSW":                  "volkswagen",
	"VOLKSWA":                 "volkswagen",
	"VOLKSWAG":                "volkswagen",
	"VOLKSWAGEN":              "volkswagen",
	"VOLKSWAGON":              "volkswagen",
	"VOLKSWGN":                "volkswagen",
	"VOLKS`":                  "volkswagen",
	"VOLKW":                   "volkswagen",
	"VOLKWA":                  "volkswagen",
	"VOLKWAGE":                "volkswagen",
	"VOLKWGN":                 "volkswagen",
	"VOLLK":                   "volkswagen",
	"VOLLKS":                  "volkswagen",
	"VOLO":                    "volvo",
	"VOLOV":                   "volvo",
	"VOLOVO":                  "volvo",
	"VOLS":                    "volkswagen",
	"VOLSWAGE":                "volkswagen",
	"VOLSWGN":                 "volkswagen",
	"VOLV /":                  "volvo",
	"VOLV":                    "volvo",
	"VOLV0":                   "volvo",
	"VOLVA":                   "volvo",
	"VOLVE":                   "volvo",
	"VOLVL":                   "volvo",
	"VOLVO":                   "volvo",
	"VOLVO/":                  "volvo",
	"VOLW":                    "volkswagen",
	"VOLX":                    "volkswagen",
	"VOVL":                    "volvo",
	"VOVLO":                   "volvo",
	"VOVLVO":                  "volvo",
	"VOVO":                    "volvo",
	"VOYAGER":                 "plymouth",
	"VW":                      "volkswagen",
	"WHITE GMC":               "gmc",
	"WHITE VOLVO":             "volvo",
	"WHITE":                   "white",
	"WHITEGMC":                "gmc",
	"WINN":                    "winnebago",
	"WINNE":                   "winnebago",
	"WINNEBAG":                "winnebago",
	"WINNEBAGO":               "winnebago",
	"WINNI":                   "winnebago",
	"WNBG":                    "winnebago",
	"WNBGO":                   "winnebago",
	"YAH":                     "yamaha",
	"YAHA":                    "yamaha",
	"YAHAMA":                  "yamaha",
	"YAHMA":                   "yamaha",
	"YAM":                     "yamaha",
	"YAMA":                    "yamaha",
	"YAMAH":                   "yamaha",
	"YAMAHA":                  "yamaha",
	"YAMAMA":                  "yamaha",
	"YAMH":                    "yamaha",
	"________":                "",
}
