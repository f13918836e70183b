package domain

// SeedProjects is the built-in portfolio shown before the admin has saved
// anything. GetProjects falls back to it while the projects document is
// still unwritten; the first admin mutation persists the real collection.
func SeedProjects() []Project {
	return []Project{
		{ID: "1", Title: "متجر عطور ذكي", Category: CategoryStore, Image: "https://images.unsplash.com/photo-1541643600914-78b084683601?auto=format&fit=crop&q=80&w=1200", Description: "تجربة تسوق فريدة مع نظام توصية ذكي يحلل أذواق المستخدمين.", ColorPalette: PaletteGold, Tags: []string{"E-commerce", "Luxury", "AI"}},
		{ID: "2", Title: "منصة عقارات عصرية", Category: CategoryCorporate, Image: "https://images.unsplash.com/photo-1460472178825-e5240623abe5?auto=format&fit=crop&q=80&w=1200", Description: "نظام بحث متقدم للعقارات الفاخرة مع جولات افتراضية ثلاثية الأبعاد.", ColorPalette: PaletteBlue, Tags: []string{"Real Estate", "Dashboard", "Modern"}},
		{ID: "3", Title: "تطبيق تأمل وراحة", Category: CategoryPersonal, Image: "https://images.unsplash.com/photo-1518241353330-0f7941c2d9b5?auto=format&fit=crop&q=80&w=1200", Description: "واجهة هادئة تساعد المستخدم على الاسترخاء والتركيز بأسلوب مينيماليست.", ColorPalette: PalettePurple, Tags: []string{"Mobile-First", "Minimalist", "Health"}},
		{ID: "4", Title: "موقع نباتات ومنزل", Category: CategoryStore, Image: "https://images.unsplash.com/photo-1485955900006-10f4d324d411?auto=format&fit=crop&q=80&w=1200", Description: "متجر متخصص لبيع النباتات النادرة وتنسيق الحدائق المنزلية.", ColorPalette: PaletteGreen, Tags: []string{"Nature", "Clean", "Retail"}},
		{ID: "5", Title: "مركز طبي متطور", Category: CategoryCorporate, Image: "https://images.unsplash.com/photo-1519494026892-80bbd2d6fd0d?auto=format&fit=crop&q=80&w=1200", Description: "نظام متكامل لحجز المواعيد والاستشارات الطبية عبر الإنترنت.", ColorPalette: PaletteBlue, Tags: []string{"Medical", "Booking", "Trust"}},
		{ID: "6", Title: "معرض أزياء فاخر", Category: CategoryPersonal, Image: "https://images.unsplash.com/photo-1490481651871-ab68de25d43d?auto=format&fit=crop&q=80&w=1200", Description: "بورتفوليو لعرض أحدث تصاميم الموضة العالمية بدقة عالية.", ColorPalette: PaletteGold, Tags: []string{"Fashion", "Creative", "Gold"}},
		{ID: "7", Title: "منصة تكنولوجيا سحابية", Category: CategoryCorporate, Image: "https://images.unsplash.com/photo-1451187580459-43490279c0fa?auto=format&fit=crop&q=80&w=1200", Description: "واجهة مستقبلية تعرض خدمات الحوسبة السحابية وحلول الـ SaaS.", ColorPalette: PalettePurple, Tags: []string{"Cloud", "SaaS", "High-Tech"}},
		{ID: "8", Title: "وكالة سفر وسياحة", Category: CategoryStore, Image: "https://images.unsplash.com/photo-1469854523086-cc02fe5d8800?auto=format&fit=crop&q=80&w=1200", Description: "متجر إلكتروني لحجز الباقات السياحية حول العالم بلمسة طبيعية.", ColorPalette: PaletteGreen, Tags: []string{"Travel", "Nature", "Booking"}},
		{ID: "9", Title: "مكتب هندسة معمارية", Category: CategoryCorporate, Image: "https://images.unsplash.com/photo-1487958449913-f95f00aabe67?auto=format&fit=crop&q=80&w=1200", Description: "عرض المشاريع الهندسية الضخمة بتصاميم هندسية دقيقة وجذابة.", ColorPalette: PaletteBlue, Tags: []string{"Architecture", "Corporate", "Geometry"}},
		{ID: "10", Title: "متجر ساعات فاخرة", Category: CategoryStore, Image: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?auto=format&fit=crop&q=80&w=1200", Description: "منصة تجارة إلكترونية متخصصة في الساعات العالمية النادرة.", ColorPalette: PaletteGold, Tags: []string{"E-commerce", "Watches", "Premium"}},
	}
}
