package tariff

// tr builds the rate card of one city from its three moto columns. Light
// vehicle columns are derived from the moto Normal rate with the standard
// ratios: 2x for VL Normal, 3x for VL Express.
func tr(normal, express, urgence float64) Rates {
	return Rates{
		Normal:    normal,
		Express:   express,
		Urgence:   urgence,
		VLNormal:  normal * 2,
		VLExpress: normal * 3,
	}
}

// Cities returns the curated Île-de-France rate grid. Rates are pickup
// charges expressed in bons, keyed by postal code and city name. Paris is
// covered per arrondissement.
func Cities() []City {
	return []City{
		{Name: "Paris 01", PostalCode: "75001", Rates: tr(2, 4, 7)},
		{Name: "Paris 02", PostalCode: "75002", Rates: tr(2, 4, 7)},
		{Name: "Paris 03", PostalCode: "75003", Rates: tr(3, 6, 9)},
		{Name: "Paris 04", PostalCode: "75004", Rates: tr(3, 6, 9)},
		{Name: "Paris 05", PostalCode: "75005", Rates: tr(3, 6, 9)},
		{Name: "Paris 06", PostalCode: "75006", Rates: tr(3, 6, 9)},
		{Name: "Paris 07", PostalCode: "75007", Rates: tr(2, 4, 7)},
		{Name: "Paris 08", PostalCode: "75008", Rates: tr(2, 4, 7)},
		{Name: "Paris 09", PostalCode: "75009", Rates: tr(2, 4, 7)},
		{Name: "Paris 10", PostalCode: "75010", Rates: tr(3, 6, 9)},
		{Name: "Paris 11", PostalCode: "75011", Rates: tr(3, 6, 9)},
		{Name: "Paris 12", PostalCode: "75012", Rates: tr(3, 6, 9)},
		{Name: "Paris 13", PostalCode: "75013", Rates: tr(3, 6, 9)},
		{Name: "Paris 14", PostalCode: "75014", Rates: tr(3, 6, 9)},
		{Name: "Paris 15", PostalCode: "75015", Rates: tr(2, 4, 7)},
		{Name: "Paris 16", PostalCode: "75016", Rates: tr(2, 4, 7)},
		{Name: "Paris 17", PostalCode: "75017", Rates: tr(2, 4, 7)},
		{Name: "Paris 18", PostalCode: "75018", Rates: tr(3, 6, 9)},
		{Name: "Paris 19", PostalCode: "75019", Rates: tr(3, 6, 9)},
		{Name: "Paris 20", PostalCode: "75020", Rates: tr(3, 6, 9)},

		// Seine-et-Marne (77)
		{Name: "Brie Comte Robert", PostalCode: "77170", Rates: tr(20, 25, 30)},
		{Name: "Bussy Saint Georges", PostalCode: "77600", Rates: tr(14, 19, 24)},
		{Name: "Champs sur Marne", PostalCode: "77420", Rates: tr(14, 19, 24)},
		{Name: "Chelles", PostalCode: "77500", Rates: tr(14, 19, 24)},
		{Name: "Chessy", PostalCode: "77700", Rates: tr(20, 25, 30)},
		{Name: "Combs la Ville", PostalCode: "77380", Rates: tr(18, 23, 28)},
		{Name: "Fontainebleau", PostalCode: "77300", Rates: tr(30, 35, 40)},
		{Name: "Lieusaint", PostalCode: "77127", Rates: tr(18, 23, 28)},
		{Name: "Lognes", PostalCode: "77185", Rates: tr(14, 19, 24)},
		{Name: "Meaux", PostalCode: "77100", Rates: tr(25, 30, 35)},
		{Name: "Melun", PostalCode: "77000", Rates: tr(25, 30, 35)},
		{Name: "Mitry Mory", PostalCode: "77290", Rates: tr(14, 19, 24)},
		{Name: "Moissy Cramayel", PostalCode: "77550", Rates: tr(18, 23, 28)},
		{Name: "Saint Thibault des Vignes", PostalCode: "77400", Rates: tr(16, 21, 26)},
		{Name: "Torcy", PostalCode: "77200", Rates: tr(14, 19, 24)},

		// Yvelines (78)
		{Name: "Bois d'Arcy", PostalCode: "78390", Rates: tr(14, 19, 24)},
		{Name: "Bougival", PostalCode: "78380", Rates: tr(8, 12, 16)},
		{Name: "Buc", PostalCode: "78530", Rates: tr(8, 12, 16)},
		{Name: "Carrières sur Seine", PostalCode: "78420", Rates: tr(8, 12, 16)},
		{Name: "Chatou", PostalCode: "78400", Rates: tr(8, 12, 16)},
		{Name: "Chesnay Rocquencourt (le)", PostalCode: "78150", Rates: tr(8, 12, 16)},
		{Name: "Houilles", PostalCode: "78800", Rates: tr(8, 12, 16)},
		{Name: "Jouy en Josas", PostalCode: "78350", Rates: tr(8, 12, 16)},
		{Name: "Louveciennes", PostalCode: "78430", Rates: tr(8, 12, 16)},
		{Name: "Maisons Laffite", PostalCode: "78600", Rates: tr(10, 15, 20)},
		{Name: "Mantes la Jolie", PostalCode: "78200", Rates: tr(25, 30, 35)},
		{Name: "Marly le Roi", PostalCode: "78160", Rates: tr(8, 12, 16)},
		{Name: "Montigny le Bretonneux", PostalCode: "78180", Rates: tr(14, 19, 24)},
		{Name: "Mureaux (les)", PostalCode: "78130", Rates: tr(20, 25, 30)},
		{Name: "Plaisir", PostalCode: "78370", Rates: tr(14, 19, 24)},
		{Name: "Poissy", PostalCode: "78300", Rates: tr(15, 20, 25)},
		{Name: "Rambouillet", PostalCode: "78120", Rates: tr(25, 30, 35)},
		{Name: "Saint Germain en Laye", PostalCode: "78100", Rates: tr(10, 15, 20)},
		{Name: "Sartrouville", PostalCode: "78500", Rates: tr(8, 12, 16)},
		{Name: "Trappes", PostalCode: "78190", Rates: tr(14, 19, 24)},
		{Name: "Vélizy Villacoublay", PostalCode: "78140", Rates: tr(8, 12, 16)},
		{Name: "Versailles", PostalCode: "78000", Rates: tr(8, 12, 16)},
		{Name: "Vesinet (le)", PostalCode: "78110", Rates: tr(8, 12, 16)},
		{Name: "Viroflay", PostalCode: "78220", Rates: tr(8, 12, 16)},
		{Name: "Voisins le Bretonneux", PostalCode: "78960", Rates: tr(14, 19, 24)},

		// Essonne (91)
		{Name: "Arpajon", PostalCode: "91290", Rates: tr(15, 20, 25)},
		{Name: "Athis Mons", PostalCode: "91200", Rates: tr(12, 17, 22)},
		{Name: "Bièvres", PostalCode: "91570", Rates: tr(12, 17, 22)},
		{Name: "Chilly Mazarin", PostalCode: "91380", Rates: tr(12, 17, 22)},
		{Name: "Évry", PostalCode: "91000", Rates: tr(15, 20, 25)},
		{Name: "Gif sur Yvette", PostalCode: "91190", Rates: tr(15, 20, 25)},
		{Name: "Juvisy sur Orge", PostalCode: "91260", Rates: tr(12, 17, 22)},
		{Name: "Longjumeau", PostalCode: "91160", Rates: tr(12, 17, 22)},
		{Name: "Massy", PostalCode: "91300", Rates: tr(12, 17, 22)},
		{Name: "Montlhéry", PostalCode: "91310", Rates: tr(15, 20, 25)},
		{Name: "Morangis", PostalCode: "91420", Rates: tr(12, 17, 22)},
		{Name: "Orsay", PostalCode: "91400", Rates: tr(15, 20, 25)},
		{Name: "Palaiseau", PostalCode: "91120", Rates: tr(12, 17, 22)},
		{Name: "Ulis (les)", PostalCode: "91940", Rates: tr(15, 20, 25)},
		{Name: "Wissous", PostalCode: "91320", Rates: tr(10, 15, 20)},

		// Hauts-de-Seine (92)
		{Name: "Antony", PostalCode: "92160", Rates: tr(8, 12, 16)},
		{Name: "Asnières sur Seine", PostalCode: "92600", Rates: tr(4, 7, 10)},
		{Name: "Bagneux", PostalCode: "92220", Rates: tr(4, 7, 10)},
		{Name: "Bois Colombes", PostalCode: "92270", Rates: tr(4, 7, 10)},
		{Name: "Boulogne Billancourt", PostalCode: "92100", Rates: tr(3, 6, 9)},
		{Name: "Châtillon", PostalCode: "92320", Rates: tr(4, 7, 10)},
		{Name: "Clamart", PostalCode: "92140", Rates: tr(4, 7, 10)},
		{Name: "Clichy", PostalCode: "92110", Rates: tr(3, 6, 9)},
		{Name: "Colombes", PostalCode: "92700", Rates: tr(4, 7, 10)},
		{Name: "Courbevoie", PostalCode: "92400", Rates: tr(3, 6, 9)},
		{Name: "Défense (la)", PostalCode: "92060", Rates: tr(3, 6, 9)},
		{Name: "Garenne Colombes (la)", PostalCode: "92250", Rates: tr(4, 7, 10)},
		{Name: "Gennevilliers", PostalCode: "92230", Rates: tr(4, 7, 10)},
		{Name: "Issy les Moulineaux", PostalCode: "92130", Rates: tr(3, 6, 9)},
		{Name: "Levallois Perret", PostalCode: "92300", Rates: tr(3, 6, 9)},
		{Name: "Malakoff", PostalCode: "92240", Rates: tr(3, 6, 9)},
		{Name: "Meudon", PostalCode: "92190", Rates: tr(4, 7, 10)},
		{Name: "Montrouge", PostalCode: "92120", Rates: tr(3, 6, 9)},
		{Name: "Nanterre", PostalCode: "92000", Rates: tr(4, 7, 10)},
		{Name: "Neuilly sur Seine", PostalCode: "92200", Rates: tr(3, 6, 9)},
		{Name: "Puteaux", PostalCode: "92800", Rates: tr(3, 6, 9)},
		{Name: "Rueil Malmaison", PostalCode: "92500", Rates: tr(4, 7, 10)},
		{Name: "Saint Cloud", PostalCode: "92210", Rates: tr(4, 7, 10)},
		{Name: "Sceaux", PostalCode: "92330", Rates: tr(8, 12, 16)},
		{Name: "Sèvres", PostalCode: "92310", Rates: tr(4, 7, 10)},
		{Name: "Suresnes", PostalCode: "92150", Rates: tr(3, 6, 9)},
		{Name: "Vanves", PostalCode: "92170", Rates: tr(3, 6, 9)},

		// Seine-Saint-Denis (93)
		{Name: "Aubervilliers", PostalCode: "93300", Rates: tr(4, 7, 10)},
		{Name: "Aulnay sous Bois", PostalCode: "93600", Rates: tr(12, 17, 22)},
		{Name: "Bagnolet", PostalCode: "93170", Rates: tr(4, 7, 10)},
		{Name: "Blanc Mesnil (le)", PostalCode: "93150", Rates: tr(8, 12, 16)},
		{Name: "Bobigny", PostalCode: "93000", Rates: tr(6, 10, 14)},
		{Name: "Bondy", PostalCode: "93140", Rates: tr(8, 12, 16)},
		{Name: "Bourget (le)", PostalCode: "93350", Rates: tr(8, 12, 16)},
		{Name: "Courneuve (la)", PostalCode: "93120", Rates: tr(6, 10, 14)},
		{Name: "Drancy", PostalCode: "93700", Rates: tr(8, 12, 16)},
		{Name: "Lilas (les)", PostalCode: "93260", Rates: tr(4, 7, 10)},
		{Name: "Montreuil sous Bois", PostalCode: "93100", Rates: tr(4, 7, 10)},
		{Name: "Noisy le Grand", PostalCode: "93160", Rates: tr(12, 17, 22)},
		{Name: "Noisy le Sec", PostalCode: "93130", Rates: tr(6, 10, 14)},
		{Name: "Pantin", PostalCode: "93500", Rates: tr(4, 7, 10)},
		{Name: "Pré Saint Gervais (le)", PostalCode: "93310", Rates: tr(4, 7, 10)},
		{Name: "Raincy (le)", PostalCode: "93340", Rates: tr(12, 17, 22)},
		{Name: "Romainville", PostalCode: "93230", Rates: tr(6, 10, 14)},
		{Name: "Rosny sous Bois", PostalCode: "93110", Rates: tr(6, 10, 14)},
		{Name: "Saint Denis (la plaine)", PostalCode: "93210", Rates: tr(4, 7, 10)},
		{Name: "Saint Denis (nord)", PostalCode: "93200", Rates: tr(6, 10, 14)},
		{Name: "Saint Ouen sur Seine", PostalCode: "93400", Rates: tr(4, 7, 10)},
		{Name: "Sevran", PostalCode: "93270", Rates: tr(14, 19, 24)},
		{Name: "Stains", PostalCode: "93240", Rates: tr(8, 12, 16)},
		{Name: "Tremblay en France", PostalCode: "93290", Rates: tr(14, 19, 24)},
		{Name: "Villepinte", PostalCode: "93420", Rates: tr(14, 19, 24)},

		// Val-de-Marne (94)
		{Name: "Alfortville", PostalCode: "94140", Rates: tr(6, 10, 14)},
		{Name: "Arcueil", PostalCode: "94110", Rates: tr(4, 7, 10)},
		{Name: "Cachan", PostalCode: "94230", Rates: tr(4, 7, 10)},
		{Name: "Champigny sur Marne", PostalCode: "94500", Rates: tr(8, 12, 16)},
		{Name: "Charenton le Pont", PostalCode: "94220", Rates: tr(4, 7, 10)},
		{Name: "Choisy le Roi", PostalCode: "94600", Rates: tr(8, 12, 16)},
		{Name: "Créteil", PostalCode: "94000", Rates: tr(8, 12, 16)},
		{Name: "Fontenay sous Bois", PostalCode: "94120", Rates: tr(6, 10, 14)},
		{Name: "Gentilly", PostalCode: "94250", Rates: tr(4, 7, 10)},
		{Name: "Ivry sur Seine", PostalCode: "94200", Rates: tr(4, 7, 10)},
		{Name: "Joinville le Pont", PostalCode: "94340", Rates: tr(6, 10, 14)},
		{Name: "Kremlin Bicêtre (le)", PostalCode: "94250", Rates: tr(4, 7, 10)},
		{Name: "Maisons Alfort", PostalCode: "94700", Rates: tr(6, 10, 14)},
		{Name: "Nogent sur Marne", PostalCode: "94130", Rates: tr(6, 10, 14)},
		{Name: "Orly", PostalCode: "94310", Rates: tr(8, 12, 16)},
		{Name: "Rungis", PostalCode: "94150", Rates: tr(8, 12, 16)},
		{Name: "Saint Mandé", PostalCode: "94160", Rates: tr(4, 7, 10)},
		{Name: "Saint Maur des Fossés", PostalCode: "94210", Rates: tr(8, 12, 16)},
		{Name: "Thiais", PostalCode: "94320", Rates: tr(8, 12, 16)},
		{Name: "Villejuif", PostalCode: "94800", Rates: tr(6, 10, 14)},
		{Name: "Villeneuve St Georges", PostalCode: "94190", Rates: tr(12, 17, 22)},
		{Name: "Vincennes", PostalCode: "94300", Rates: tr(4, 7, 10)},
		{Name: "Vitry sur Seine", PostalCode: "94400", Rates: tr(6, 10, 14)},

		// Val-d'Oise (95)
		{Name: "Argenteuil", PostalCode: "95100", Rates: tr(8, 12, 16)},
		{Name: "Bezons", PostalCode: "95870", Rates: tr(8, 12, 16)},
		{Name: "Cergy", PostalCode: "95800", Rates: tr(15, 20, 25)},
		{Name: "Deuil la Barre", PostalCode: "95170", Rates: tr(10, 15, 20)},
		{Name: "Enghien les Bains", PostalCode: "95880", Rates: tr(10, 15, 20)},
		{Name: "Garges les Gonesse", PostalCode: "95140", Rates: tr(10, 15, 20)},
		{Name: "Gonesse", PostalCode: "95000", Rates: tr(10, 15, 20)},
		{Name: "Herblay", PostalCode: "95220", Rates: tr(15, 20, 25)},
		{Name: "Pontoise", PostalCode: "95300", Rates: tr(15, 20, 25)},
		{Name: "Roissy en France", PostalCode: "95700", Rates: tr(14, 19, 24)},
		{Name: "Saint Gratien", PostalCode: "95210", Rates: tr(10, 15, 20)},
		{Name: "Sarcelles", PostalCode: "95200", Rates: tr(10, 15, 20)},
	}
}
